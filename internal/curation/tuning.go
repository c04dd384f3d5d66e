package curation

// RelevanceWeights weights the four relevance components. The weights should
// sum to 1.0; each component is scaled to 0-100 before weighting.
type RelevanceWeights struct {
	AudioMatch float64 `koanf:"audio_match"`
	Preference float64 `koanf:"preference"`
	Popularity float64 `koanf:"popularity"`
	Novelty    float64 `koanf:"novelty"`
}

// DiversityTuning holds the weights and clipping scales of the composite
// diversity score. The scales are chosen so that good diversity (tempo
// spread >20 BPM, energy spread >0.15) saturates near 100.
type DiversityTuning struct {
	ArtistWeight float64 `koanf:"artist_weight"`
	TempoWeight  float64 `koanf:"tempo_weight"`
	EnergyWeight float64 `koanf:"energy_weight"`
	ArtistScale  float64 `koanf:"artist_scale"` // multiplies the unique-artist ratio
	TempoScale   float64 `koanf:"tempo_scale"`  // multiplies tempo std (BPM)
	EnergyScale  float64 `koanf:"energy_scale"` // multiplies energy std
}

// Tuning collects every hand-tuned constant of the pipeline. The values have
// no documented derivation and are exposed as configuration so they can be
// re-tuned empirically without code changes.
type Tuning struct {
	Relevance RelevanceWeights `koanf:"relevance"`
	Diversity DiversityTuning  `koanf:"diversity"`
	ArtistCap int              `koanf:"artist_cap"` // max tracks per lead artist before relaxation
}

// DefaultTuning returns the recommended tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		Relevance: RelevanceWeights{
			AudioMatch: 0.40,
			Preference: 0.30,
			Popularity: 0.20,
			Novelty:    0.10,
		},
		Diversity: DiversityTuning{
			ArtistWeight: 0.40,
			TempoWeight:  0.30,
			EnergyWeight: 0.30,
			ArtistScale:  150,
			TempoScale:   3,
			EnergyScale:  300,
		},
		ArtistCap: 2,
	}
}

// withDefaults replaces unset values with the recommended defaults, so a
// zero Tuning behaves like DefaultTuning.
func (t Tuning) withDefaults() Tuning {
	def := DefaultTuning()
	if t.Relevance == (RelevanceWeights{}) {
		t.Relevance = def.Relevance
	}
	if t.Diversity == (DiversityTuning{}) {
		t.Diversity = def.Diversity
	}
	if t.ArtistCap <= 0 {
		t.ArtistCap = def.ArtistCap
	}
	return t
}
