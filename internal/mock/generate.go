package mock

//go:generate mockgen -destination random.go -package mock github.com/buildbarn/bb-random/pkg/random SeedableBlockGenerator,Source
//go:generate mockgen -destination util.go -package mock github.com/buildbarn/bb-random/pkg/util ErrorLogger
