package domain

import (
	"strings"
	"time"
)

// Risk levels recognised by the dashboard
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

// Doctor represents an authenticated clinician who owns patients
type Doctor struct {
	ID             uint
	Name           string
	Email          string
	PasswordHash   string `gorm:"column:password"`
	MedicalID      string
	Hospital       string
	HospitalPhone  string
	Specialization string
	CreatedAt      time.Time
	LastLogin      *time.Time
	IsActive       bool
}

// DoctorProfile is the public view of a doctor
type DoctorProfile struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	MedicalID      string     `json:"medicalId"`
	Hospital       string     `json:"hospital"`
	HospitalPhone  string     `json:"hospitalPhone"`
	Specialization string     `json:"specialization"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastLogin      *time.Time `json:"lastLogin"`
}

// Profile returns the public profile, without the password credential
func (d *Doctor) Profile() *DoctorProfile {
	return &DoctorProfile{
		ID:             d.ID,
		Name:           d.Name,
		Email:          d.Email,
		MedicalID:      d.MedicalID,
		Hospital:       d.Hospital,
		HospitalPhone:  d.HospitalPhone,
		Specialization: d.Specialization,
		CreatedAt:      d.CreatedAt,
		LastLogin:      d.LastLogin,
	}
}

// DoctorRegistration carries the data needed to register a doctor
type DoctorRegistration struct {
	Name           string
	Email          string
	Password       string
	MedicalID      string
	Hospital       string
	HospitalPhone  string
	Specialization string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	Token     string         `json:"token"`
	Doctor    *DoctorProfile `json:"doctor"`
	ExpiresIn int64          `json:"expiresIn"`
}

// Patient is a clinical record owned by exactly one doctor.
// Optional columns are pointers so that an update can store null.
type Patient struct {
	ID              uint      `json:"id"`
	DoctorID        uint      `json:"doctorId"`
	Name            *string   `json:"name"`
	Age             *int      `json:"age"`
	Gender          *string   `json:"gender"`
	Phone           *string   `json:"phone"`
	FamilyPhone     *string   `json:"familyPhone"`
	State           *string   `json:"state"`
	City            *string   `json:"city"`
	Weight          *float64  `json:"weight"`
	Height          *float64  `json:"height"`
	Temperature     *float64  `json:"temperature"`
	BloodPressure   *string   `json:"bloodPressure"`
	Oxygen          *float64  `json:"oxygen"`
	Pulse           *int      `json:"pulse"`
	Symptoms        []string  `json:"symptoms"`
	VoiceSymptoms   *string   `json:"voiceSymptoms"`
	RiskLevel       *string   `json:"riskLevel"`
	Disease         *string   `json:"disease"`
	Triggers        []string  `json:"triggers"`
	Recommendations []string  `json:"recommendations"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// HasRiskLevel reports whether the patient's risk level matches level, ignoring case
func (p *Patient) HasRiskLevel(level string) bool {
	return p.RiskLevel != nil && strings.EqualFold(*p.RiskLevel, level)
}

// PatientFields is the caller-supplied payload for create and update
type PatientFields struct {
	Name            *string  `json:"name"`
	Age             *int     `json:"age"`
	Gender          *string  `json:"gender"`
	Phone           *string  `json:"phone"`
	FamilyPhone     *string  `json:"familyPhone"`
	State           *string  `json:"state"`
	City            *string  `json:"city"`
	Weight          *float64 `json:"weight"`
	Height          *float64 `json:"height"`
	Temperature     *float64 `json:"temperature"`
	BloodPressure   *string  `json:"bloodPressure"`
	Oxygen          *float64 `json:"oxygen"`
	Pulse           *int     `json:"pulse"`
	Symptoms        []string `json:"symptoms"`
	VoiceSymptoms   *string  `json:"voiceSymptoms"`
	RiskLevel       *string  `json:"riskLevel"`
	Disease         *string  `json:"disease"`
	Triggers        []string `json:"triggers"`
	Recommendations []string `json:"recommendations"`
}

// DashboardAnalytics summarises a doctor's patient population
type DashboardAnalytics struct {
	TotalPatients       int            `json:"totalPatients"`
	HighRiskPatients    int            `json:"highRiskPatients"`
	MediumRiskPatients  int            `json:"mediumRiskPatients"`
	LowRiskPatients     int            `json:"lowRiskPatients"`
	DiseaseDistribution map[string]int `json:"diseaseDistribution"`
	RiskTrends          map[string]int `json:"riskTrends"`
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	DoctorID  uint   `json:"doctor_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
