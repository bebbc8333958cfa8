package domain

type OperationsInput struct {
	NumDoctors      int `json:"numDoctors" yaml:"numDoctors"`
	PatientsPerHour int `json:"patientsPerHour" yaml:"patientsPerHour"`
	ConsultMinutes  int `json:"consultMinutes" yaml:"consultMinutes"`
	NumBeds         int `json:"numBeds" yaml:"numBeds"`
	Shifts          int `json:"shifts" yaml:"shifts"`
}

// Advisory is a human-readable recommendation derived from a metric band.
type Advisory struct {
	Warning bool   `json:"warning" yaml:"warning"`
	Message string `json:"message" yaml:"message"`
}

type OperationsOutput struct {
	PatientsPerDoctor    float64  `json:"patientsPerDoctor" yaml:"patientsPerDoctor"`
	DoctorUtilizationPct float64  `json:"doctorUtilizationPct" yaml:"doctorUtilizationPct"`
	WaitingTimeMin       float64  `json:"waitingTimeMin" yaml:"waitingTimeMin"`
	BedUtilizationPct    float64  `json:"bedUtilizationPct" yaml:"bedUtilizationPct"`
	Throughput           float64  `json:"throughput" yaml:"throughput"`
	DoctorAdvisory       Advisory `json:"doctorAdvisory" yaml:"doctorAdvisory"`
	BedAdvisory          Advisory `json:"bedAdvisory" yaml:"bedAdvisory"`
}
