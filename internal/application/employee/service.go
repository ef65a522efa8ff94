package employee

import "time"

// Service implements account and profile operations on top of the
// persistence and security ports. Every protected operation takes the acting
// identity as an explicit parameter; the service never reads it from a
// context value.
type Service struct {
	employees EmployeeRepo
	profiles  ProfileRepo
	hasher    PasswordHasher
	signer    TokenSigner

	tokenTTL time.Duration
}

type Config struct {
	TokenTTL time.Duration
}

func NewService(employees EmployeeRepo, profiles ProfileRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		employees: employees,
		profiles:  profiles,
		hasher:    hasher,
		signer:    signer,
		tokenTTL:  ttl,
	}
}
