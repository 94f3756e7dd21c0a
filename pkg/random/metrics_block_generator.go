package random

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	blockGeneratorPrometheusMetrics sync.Once

	blockGeneratorOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "random",
			Name:      "block_generator_operations_total",
			Help:      "Total number of operations against block generators.",
		},
		[]string{"name", "operation"})
	blockGeneratorGeneratedBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "random",
			Name:      "block_generator_generated_bytes_total",
			Help:      "Total number of bytes of output generated by block generators.",
		},
		[]string{"name"})
)

type metricsBlockGenerator struct {
	base SeedableBlockGenerator
	name string

	generate       prometheus.Counter
	seed           prometheus.Counter
	clone          prometheus.Counter
	generatedBytes prometheus.Counter
}

// NewMetricsBlockGenerator is a decorator for SeedableBlockGenerator
// that exposes the number of blocks generated, the number of times the
// generator got seeded and the number of times it got cloned through
// Prometheus. When wrapped by a ReseedingGenerator, the number of seed
// operations corresponds to the number of successful reseeds.
func NewMetricsBlockGenerator(base SeedableBlockGenerator, name string) SeedableBlockGenerator {
	blockGeneratorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(blockGeneratorOperationsTotal)
		prometheus.MustRegister(blockGeneratorGeneratedBytesTotal)
	})

	return &metricsBlockGenerator{
		base: base,
		name: name,

		generate:       blockGeneratorOperationsTotal.WithLabelValues(name, "Generate"),
		seed:           blockGeneratorOperationsTotal.WithLabelValues(name, "Seed"),
		clone:          blockGeneratorOperationsTotal.WithLabelValues(name, "Clone"),
		generatedBytes: blockGeneratorGeneratedBytesTotal.WithLabelValues(name),
	}
}

func (g *metricsBlockGenerator) BlockSize() int {
	return g.base.BlockSize()
}

func (g *metricsBlockGenerator) Generate(block []uint32) {
	g.generate.Inc()
	g.generatedBytes.Add(float64(4 * len(block)))
	g.base.Generate(block)
}

func (g *metricsBlockGenerator) SeedSize() int {
	return g.base.SeedSize()
}

func (g *metricsBlockGenerator) Seed(seed []byte) {
	g.seed.Inc()
	g.base.Seed(seed)
}

func (g *metricsBlockGenerator) Clone() SeedableBlockGenerator {
	g.clone.Inc()
	return &metricsBlockGenerator{
		base: g.base.Clone(),
		name: g.name,

		generate:       g.generate,
		seed:           g.seed,
		clone:          g.clone,
		generatedBytes: g.generatedBytes,
	}
}
