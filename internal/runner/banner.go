package runner

import "time"

// Banner is a level announcement sliding down from above the playfield.
type Banner struct {
	Text    string
	Y       float64 // Top edge in world units
	Alpha   float64
	Visible bool
}

type bannerTiming struct {
	text     string
	lifetime time.Duration
	slide    time.Duration
	fadeAt   time.Duration
}

const (
	bannerStartY = -60.0
	bannerRestY  = 50.0
)

var banners = map[PlayMode]bannerTiming{
	ModeNormal: {
		text:     "Press SPACE BAR to Jump!",
		lifetime: 5000 * time.Millisecond,
		slide:    600 * time.Millisecond,
		fadeAt:   4000 * time.Millisecond,
	},
	ModeAltCostume: {
		text:     "Congrats! You've entered Batman mode! (Level 2)",
		lifetime: 8000 * time.Millisecond,
		slide:    700 * time.Millisecond,
		fadeAt:   6000 * time.Millisecond,
	},
	ModeFinale: {
		text:     "Level 3: Seattle round!",
		lifetime: 8000 * time.Millisecond,
		slide:    700 * time.Millisecond,
		fadeAt:   6000 * time.Millisecond,
	},
}

// BannerFor returns the banner for mode, elapsed time after the mode began.
// It slides in, rests, then fades out before the end of its lifetime.
func BannerFor(mode PlayMode, elapsed time.Duration) Banner {
	b, ok := banners[mode]
	if !ok || elapsed < 0 || elapsed > b.lifetime {
		return Banner{}
	}

	out := Banner{Text: b.text, Y: bannerRestY, Alpha: 1, Visible: true}
	switch {
	case elapsed < b.slide:
		out.Y = bannerStartY + (bannerRestY-bannerStartY)*float64(elapsed)/float64(b.slide)
	case elapsed > b.fadeAt:
		out.Alpha = 1 - float64(elapsed-b.fadeAt)/float64(b.lifetime-b.fadeAt)
	}
	return out
}
