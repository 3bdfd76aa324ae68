package billing

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"250.50", 250.50, true},
		{"  42.5  ", 42.5, true},
		{"-10", -10, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseAmount(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestInvoiceIsPaid(t *testing.T) {
	cases := []struct {
		estado string
		want   bool
	}{
		{EstadoPagada, true},
		{EstadoPagado, true},
		{EstadoPendiente, false},
		{EstadoPendienteVerificacion, false},
		{EstadoAnulada, false},
		{"", false},
	}
	for _, tc := range cases {
		inv := &Invoice{EstadoPago: tc.estado}
		if inv.IsPaid() != tc.want {
			t.Errorf("IsPaid() with estado %q = %v, want %v", tc.estado, inv.IsPaid(), tc.want)
		}
	}
}

func TestInvoiceCurrencyDefault(t *testing.T) {
	inv := &Invoice{}
	if got := inv.Currency(); got != "USD" {
		t.Errorf("Currency() = %q, want USD", got)
	}

	empty := ""
	inv.Moneda = &empty
	if got := inv.Currency(); got != "USD" {
		t.Errorf("Currency() with empty moneda = %q, want USD", got)
	}

	bs := "BS"
	inv.Moneda = &bs
	if got := inv.Currency(); got != "BS" {
		t.Errorf("Currency() = %q, want BS", got)
	}
}
