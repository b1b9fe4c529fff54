package enum

import (
	"encoding/json"
	"testing"
)

func TestPaymentStatusUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PaymentStatus
		wantErr bool
	}{
		{"pending", `"Pending"`, PaymentStatusPending, false},
		{"paid", `"Paid"`, PaymentStatusPaid, false},
		{"partially paid", `"Partially Paid"`, PaymentStatusPartiallyPaid, false},
		{"compact partially paid", `"PartiallyPaid"`, PaymentStatusPartiallyPaid, false},
		{"numeric form", `1`, PaymentStatusPaid, false},
		{"unknown string", `"Overdue"`, 0, true},
		{"empty string", `""`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got PaymentStatus
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded as %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
