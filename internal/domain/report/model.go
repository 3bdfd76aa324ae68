package report

// Stats carries the headline counters shown next to the financial numbers.
type Stats struct {
	TotalAppointments  int `json:"totalAppointments"`
	TotalConsultations int `json:"totalConsultations"`
	TotalInvoices      int `json:"totalInvoices"`
	PaidInvoices       int `json:"paidInvoices"`
}

// RevenueReport is the full response body of the revenue report endpoint.
// Field names follow the shape the dashboard frontend already consumes.
type RevenueReport struct {
	AppointmentsByMonth  []MonthCount      `json:"appointmentsByMonth"`
	ConsultationsByMonth []MonthCount      `json:"consultationsByMonth"`
	TotalIncome          float64           `json:"totalIncome"`
	TotalIncomeUSD       float64           `json:"totalIncomeUSD"`
	TotalIncomeBS        float64           `json:"totalIncomeBS"`
	IncomeBreakdown      []*BreakdownEntry `json:"incomeBreakdown"`
	TopDiagnoses         []DiagnosisCount  `json:"topDiagnoses"`
	TotalOrders          int               `json:"totalOrders"`
	TotalCriticalResults int               `json:"totalCriticalResults"`
	Stats                Stats             `json:"stats"`
}
