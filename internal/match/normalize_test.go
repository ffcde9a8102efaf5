package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FullName", "fullname"},
		{"full_name", "fullname"},
		{"full-name", "fullname"},
		{"fullName", "fullname"},
		{"FULLNAME", "fullname"},
		{"SKU", "sku"},
		{"ZIPCode", "zipcode"},
		{"sendHTTPRequest", "sendhttprequest"},
		{"Total_Cents", "totalcents"},
		{"item_SKU-code", "itemskucode"},
		{"postal code", "postalcode"},
		{"Address2Line", "address2line"},
		{"", ""},
		{"Q", "q"},
		{"Größe", "größe"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"CustomerID", "customer"},
		{"skuId", "sku"},
		{"ItemIDs", "item"},
		{"tagIds", "tag"},
		{"PaidAt", "paid"},
		{"ShippedUTC", "shipped"},
		{"signupUTC", "signup"},
		{"ShippedTimestamp", "shipped"},

		// Nothing would remain
		{"ID", "id"},
		{"At", "at"},
		{"UTC", "utc"},

		{"Quantity", "quantity"},
		{"noteText", "notetext"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdentWithSuffixStrip(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"CustomerID", []string{"Customer", "ID"}},
		{"fullName", []string{"full", "Name"}},
		{"SKUCode", []string{"SKU", "Code"}},
		{"sendHTTPRequest", []string{"send", "HTTP", "Request"}},
		{"order_item", []string{"order", "item"}},
		{"SKU", []string{"SKU"}},
		{"", nil},
		{"QtY", []string{"Qt", "Y"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"Address2Line", []string{"Address2", "Line"}},
		{"_Draft", []string{"Draft"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizeCamelCase(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"order", "item", "draft"}, TokenizeIdent("OrderItemDraft"))
	assert.Equal(t, []string{"xml", "draft"}, TokenizeIdent("XMLDraft"))
	assert.Equal(t, []string{"draft"}, TokenizeIdent("draft"))
}
