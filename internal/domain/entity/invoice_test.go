package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoicer/internal/domain/entity"
)

func TestInvoice_FileName(t *testing.T) {
	inv := &entity.Invoice{Header: entity.InvoiceHeader{Number: "1001", ClientName: "  John Smith "}}
	assert.Equal(t, "Invoice_1001_John Smith.pdf", inv.FileName())

	inv.Header.ClientName = "Smith/Jones\\LLC"
	assert.Equal(t, "Invoice_1001_Smith-Jones-LLC.pdf", inv.FileName())
}

func TestInvoice_BillableItems(t *testing.T) {
	inv := &entity.Invoice{Items: []entity.LineItem{
		{Description: "Mulch", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)},
		{Description: " \t "},
		{Description: "Delivery Fee"},
	}}

	items := inv.BillableItems()
	assert.Len(t, items, 2)
	assert.Equal(t, "Delivery Fee", items[1].Description)
}

func TestLineItem_LineTotalExacto(t *testing.T) {
	it := entity.LineItem{Quantity: decimal.RequireFromString("0.1"), UnitPrice: decimal.RequireFromString("0.2")}
	assert.True(t, decimal.RequireFromString("0.02").Equal(it.LineTotal()))
}

func TestCompanyProfile_Payee(t *testing.T) {
	c := entity.CompanyProfile{Name: "Elite Hand Mulch LLC"}
	assert.Equal(t, "Elite Hand Mulch LLC", c.Payee())
	c.PayableTo = "E.H. Mulch"
	assert.Equal(t, "E.H. Mulch", c.Payee())
}
