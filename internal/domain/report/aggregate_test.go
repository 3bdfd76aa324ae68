package report

import "testing"

func TestExtractReference(t *testing.T) {
	cases := []struct {
		notas string
		want  string
		ok    bool
	}{
		{"pago movil [REFERENCIA] 0412-998877", "0412-998877", true},
		{"[REFERENCIA]ABC123", "ABC123", true},
		{"[REFERENCIA]   XYZ  otras notas", "XYZ", true},
		{"transferencia sin marcador", "", false},
		{"", "", false},
		{"referencia 1234", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractReference(tc.notas)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ExtractReference(%q) = (%q, %v), want (%q, %v)", tc.notas, got, ok, tc.want, tc.ok)
		}
	}
}
