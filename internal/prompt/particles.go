package prompt

const (
	// BatchSize is the number of hearts generated on every entry into Celebrating.
	BatchSize = 25

	MaxHorizontalPercent = 100.0
	MaxDelaySeconds      = 5.0
	MinSizePixels        = 10.0
	SizeSpreadPixels     = 20.0

	// Display colour of a heart, HSL.
	HueMin          = 340.0
	HueSpread       = 20.0
	HeartSaturation = 1.0
	HeartLightness  = 0.75
)

// Particle describes one floating heart. The renderer loops its
// drift-and-fade animation from these parameters alone.
type Particle struct {
	ID                int
	HorizontalPercent float64
	DelaySeconds      float64
	SizePixels        float64
}

// Generate materializes a batch of count hearts. IDs ascend from 0.
func Generate(src Source, count int) []Particle {
	if count <= 0 {
		return nil
	}
	batch := make([]Particle, count)
	for i := range batch {
		batch[i] = Particle{
			ID:                i,
			HorizontalPercent: uniform(src, 0, MaxHorizontalPercent),
			DelaySeconds:      uniform(src, 0, MaxDelaySeconds),
			SizePixels:        uniform(src, MinSizePixels, MinSizePixels+SizeSpreadPixels),
		}
	}
	return batch
}

// Hue draws a rose/pink display hue in [340, 360) degrees.
// It is not part of Particle; renderers pick it when they first draw a heart.
func Hue(src Source) float64 {
	return uniform(src, HueMin, HueMin+HueSpread)
}
