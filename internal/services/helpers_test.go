package services

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/you/clinicsvc/domain"
	"github.com/you/clinicsvc/internal/mocks"
)

// fixedNow is the clock every service under test reads
var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// tokenFor returns a token service mock where "token-<id>" belongs to doctor id
func tokenFor() *mocks.MockTokenService {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
		switch token {
		case "token-1":
			return &domain.TokenClaims{DoctorID: 1, Email: "one@example.com"}, nil
		case "token-2":
			return &domain.TokenClaims{DoctorID: 2, Email: "two@example.com"}, nil
		case "expired":
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	return tokenSvc
}

func createValidDoctor(t *testing.T) *domain.Doctor {
	t.Helper()

	return &domain.Doctor{
		ID:             1,
		Name:           "Dr. House",
		Email:          "house@example.com",
		PasswordHash:   "hashed_password123",
		MedicalID:      "MED-1",
		Hospital:       "Princeton-Plainsboro",
		HospitalPhone:  "5550100",
		Specialization: "Diagnostics",
		CreatedAt:      fixedNow.Add(-24 * time.Hour),
		IsActive:       true,
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
