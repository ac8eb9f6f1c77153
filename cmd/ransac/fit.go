package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/ransac/infra/config"
	"github.com/drakos74/ransac/internal/metrics"
	"github.com/drakos74/ransac/internal/ransac"
	"github.com/drakos74/ransac/internal/storage"
	"github.com/drakos74/ransac/internal/storage/file/json"
)

type options struct {
	input        string
	config       string
	out          string
	seed         int64
	trials       int
	trialsSet    bool
	threshold    float64
	thresholdSet bool
	refine       bool
	dryRun       bool
	pushGateway  string
}

func (o options) fitConfig() (ransac.Config, error) {
	cfg := ransac.DefaultConfig()
	if o.config != "" {
		if err := config.Load(o.config, &cfg); err != nil {
			return cfg, err
		}
	}
	if o.trialsSet {
		cfg.Trials = o.trials
	}
	if o.thresholdSet {
		cfg.Threshold = o.threshold
	}
	return cfg, cfg.Validate()
}

func run(o options) (ransac.Result, error) {
	cfg, err := o.fitConfig()
	if err != nil {
		return ransac.Result{}, err
	}

	var points []ransac.Point
	if err := json.LoadFile(o.input, &points); err != nil {
		return ransac.Result{}, fmt.Errorf("could not load points: %w", err)
	}

	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fitter, err := ransac.New(
		ransac.WithConfig(cfg),
		ransac.WithSource(ransac.NewSource(seed)),
		ransac.WithObserver(metrics.Observer),
	)
	if err != nil {
		return ransac.Result{}, err
	}

	result, err := fitter.Fit(points)
	if o.pushGateway != "" {
		if err := metrics.Observer.Push(o.pushGateway, "ransac"); err != nil {
			log.Error().Err(err).Str("id", result.ID).Msg("could not push metrics")
		}
	}
	if err != nil {
		return result, err
	}
	if !result.Consensus() {
		return result, fmt.Errorf("could not fit %d points with seed %d: %w", len(points), seed, ransac.ErrNoConsensus)
	}

	if o.refine {
		refined, err := fitter.Refine(nil)
		if err != nil {
			log.Warn().Err(err).Str("id", result.ID).Msg("could not refine model")
		} else {
			result = refined
		}
	}

	if !result.WithinBudget() {
		log.Warn().
			Str("id", result.ID).
			Float64("sum-squares", result.Summary.SumSquares).
			Float64("budget", result.Budget).
			Msg("inlier residuals exceed the squared residual threshold")
	}

	var store storage.Persistence = json.NewJsonBlob(o.out, "results", false)
	if o.dryRun {
		store = storage.NewVoidStorage()
	}
	key := storage.ResultKey(time.Now())
	if err := store.Store(key, result); err != nil {
		return result, fmt.Errorf("could not store result: %w", err)
	}
	log.Info().
		Str("id", result.ID).
		Str("out", o.out).
		Str("file", key.Path()).
		Bool("dry-run", o.dryRun).
		Msg("stored result")

	return result, nil
}
