package service

import (
	"errors"
	"log/slog"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/metrics"
	"github.com/vaultpass/passgen/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen     *crypto.Generator
	fp      *crypto.Fingerprinter
	metrics *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService. fp and m may be nil.
func NewGeneratorService(gen *crypto.Generator, fp *crypto.Fingerprinter, m *metrics.Metrics) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}

	if err := gen.Selector().Warning(); err != nil {
		slog.Warn("password generation guarantee degraded", "error", err)
	}
	if m != nil {
		m.SetWeakSource(gen.Selector().Weak())
	}

	return &GeneratorService{gen: gen, fp: fp, metrics: m}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, false),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		s.observeFailure(err)
		return model.GenerateResponse{}, err
	}

	pool := opts.Pool()
	strength := crypto.EstimateStrength(password, pool)

	resp := model.GenerateResponse{
		Password:    password,
		Length:      len([]rune(password)),
		PoolSize:    pool.Distinct(),
		EntropyBits: strength.Bits,
		Strength:    strength.Category.String(),
	}
	if s.fp != nil {
		resp.ID = s.fp.Fingerprint(password)
	}
	if w := s.gen.Selector().Warning(); w != nil {
		resp.Warning = w.Error()
	}

	if s.metrics != nil {
		s.metrics.ObserveGeneration(resp.Strength)
	}
	slog.Debug("password generated",
		"length", resp.Length,
		"pool_size", resp.PoolSize,
		"strength", resp.Strength,
	)

	return resp, nil
}

// Strength estimates a password against the pool described by the request.
func (s *GeneratorService) Strength(req model.StrengthRequest) (model.StrengthResponse, error) {
	opts := crypto.GeneratorOptions{
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, false),
	}

	pool := opts.Pool()
	if pool.Size() == 0 {
		return model.StrengthResponse{}, crypto.ErrEmptyPool
	}

	strength := crypto.EstimateStrength(req.Password, pool)
	return model.StrengthResponse{
		PoolSize:    pool.Distinct(),
		EntropyBits: strength.Bits,
		Strength:    strength.Category.String(),
	}, nil
}

func (s *GeneratorService) observeFailure(err error) {
	reason := "random_source"
	switch {
	case errors.Is(err, crypto.ErrEmptyPool):
		reason = "empty_pool"
	case errors.Is(err, crypto.ErrLengthTooShort), errors.Is(err, crypto.ErrLengthTooLong):
		reason = "length"
	default:
		slog.Error("password generation failed", "error", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveFailure(reason)
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
