package random

import (
	"encoding/hex"

	"github.com/buildbarn/bb-random/pkg/util"
	"golang.org/x/crypto/chacha20"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SourceConfiguration describes a Source that is to be constructed
// through NewSourceFromConfiguration(). Exactly one of the fields must
// be set.
type SourceConfiguration struct {
	// Obtain random data from the operating system.
	Crypto *struct{} `json:"crypto,omitempty"`
	// Call getrandom(2) directly. Only supported on Linux.
	Getrandom *GetrandomConfiguration `json:"getrandom,omitempty"`
	// Use a LocalGenerator that is seeded by the operating system.
	LocalGenerator *struct{} `json:"localGenerator,omitempty"`
	// Yield an arithmetic sequence. Only useful for testing.
	Step *StepConfiguration `json:"step,omitempty"`
	// Use a deterministic xorshift64* generator.
	XorShift *XorShiftConfiguration `json:"xorShift,omitempty"`
	// Use a block generator that is reseeded periodically.
	Reseeding *ReseedingConfiguration `json:"reseeding,omitempty"`
}

// GetrandomConfiguration holds the parameters of a source created
// through NewGetrandomSource().
type GetrandomConfiguration struct {
	NonBlocking bool `json:"nonBlocking"`
}

// StepConfiguration holds the parameters of a StepSource.
type StepConfiguration struct {
	Initial   uint64 `json:"initial"`
	Increment uint64 `json:"increment"`
}

// XorShiftConfiguration holds the parameters of a source created
// through NewXorShiftSource().
type XorShiftConfiguration struct {
	Seed uint64 `json:"seed"`
}

// ReseedingConfiguration holds the parameters of a ReseedingGenerator.
type ReseedingConfiguration struct {
	// The algorithm of the inner block generator: "CHACHA20",
	// "BLAKE3" or "PCG".
	Algorithm string `json:"algorithm"`
	// Hexadecimal initial seed of the inner block generator. When
	// left empty, the inner block generator is seeded using the
	// reseeder.
	Seed string `json:"seed,omitempty"`
	// Number of bytes after which the inner block generator is
	// reseeded. Zero disables reseeding based on output size.
	ThresholdBytes uint64 `json:"thresholdBytes"`
	// Source of seeds. Defaults to the operating system.
	Reseeder *SourceConfiguration `json:"reseeder,omitempty"`
	// When set, expose Prometheus metrics for the inner block
	// generator using the provided name.
	MetricsName string `json:"metricsName,omitempty"`
}

var blockGeneratorFactories = map[string]struct {
	seedSize int
	factory  func(seed []byte) SeedableBlockGenerator
}{
	"BLAKE3":   {seedSize: blake3SeedSize, factory: NewBLAKE3BlockGenerator},
	"CHACHA20": {seedSize: chacha20.KeySize, factory: NewChaCha20BlockGenerator},
	"PCG":      {seedSize: pcgSeedSize, factory: NewPCGBlockGenerator},
}

// NewSourceFromConfiguration creates a Source based on parameters
// provided in a configuration file. Errors of generators that are
// reseeded automatically are reported through the provided
// ErrorLogger.
func NewSourceFromConfiguration(configuration *SourceConfiguration, errorLogger util.ErrorLogger) (Source, error) {
	if configuration == nil {
		return nil, status.Error(codes.InvalidArgument, "Source configuration not specified")
	}

	var sources []Source
	if configuration.Crypto != nil {
		sources = append(sources, CryptoSource)
	}
	if c := configuration.Getrandom; c != nil {
		source, err := NewGetrandomSource(c.NonBlocking)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	if configuration.LocalGenerator != nil {
		sources = append(sources, NewLocalGenerator())
	}
	if c := configuration.Step; c != nil {
		sources = append(sources, NewStepSource(c.Initial, c.Increment))
	}
	if c := configuration.XorShift; c != nil {
		sources = append(sources, NewXorShiftSource(c.Seed))
	}
	if c := configuration.Reseeding; c != nil {
		source, err := newReseedingGeneratorFromConfiguration(c, errorLogger)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}

	switch len(sources) {
	case 0:
		return nil, status.Error(codes.InvalidArgument, "No source type specified")
	case 1:
		return sources[0], nil
	default:
		return nil, status.Error(codes.InvalidArgument, "Multiple source types specified")
	}
}

func newReseedingGeneratorFromConfiguration(configuration *ReseedingConfiguration, errorLogger util.ErrorLogger) (*ReseedingGenerator, error) {
	algorithm, ok := blockGeneratorFactories[configuration.Algorithm]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "Unknown block generator algorithm %#v", configuration.Algorithm)
	}

	reseeder := CryptoSource
	if configuration.Reseeder != nil {
		var err error
		reseeder, err = NewSourceFromConfiguration(configuration.Reseeder, errorLogger)
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create reseeder")
		}
	}

	seed := make([]byte, algorithm.seedSize)
	if configuration.Seed == "" {
		if err := reseeder.TryFillBytes(seed); err != nil {
			return nil, util.StatusWrap(err, "Failed to obtain initial seed")
		}
	} else {
		decoded, err := hex.DecodeString(configuration.Seed)
		if err != nil {
			return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid seed")
		}
		if len(decoded) != algorithm.seedSize {
			return nil, status.Errorf(codes.InvalidArgument, "Seed is %d bytes in size, while algorithm %s requires %d bytes", len(decoded), configuration.Algorithm, algorithm.seedSize)
		}
		seed = decoded
	}

	inner := algorithm.factory(seed)
	if configuration.MetricsName != "" {
		inner = NewMetricsBlockGenerator(inner, configuration.MetricsName)
	}
	return NewReseedingGenerator(inner, configuration.ThresholdBytes, reseeder, errorLogger), nil
}
