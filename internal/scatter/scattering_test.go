package scatter

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/wildstyl3r/collimc/internal/crosssection"
	"github.com/wildstyl3r/collimc/internal/material"
	"github.com/wildstyl3r/collimc/internal/particle"
	"github.com/wildstyl3r/collimc/internal/random"
)

// sequence replays uniform draws in [0, 1) scaled to the requested range.
type sequence struct {
	draws []float64
	calls int
}

func (s *sequence) Uniform(lo, hi float64) float64 {
	u := s.draws[s.calls%len(s.draws)]
	s.calls++
	return lo + (hi-lo)*u
}

var _ = Describe("Processes", func() {
	var (
		cu  *material.Material
		cs  *crosssection.CrossSections
		rng *sequence
		E0  float64
	)

	BeforeEach(func() {
		var err error
		cu, err = material.NewDatabase().Get("Cu")
		Expect(err).NotTo(HaveOccurred())
		E0 = 7000.
		cs, err = crosssection.New(cu, E0, crosssection.SixTrack)
		Expect(err).NotTo(HaveOccurred())
		rng = &sequence{draws: []float64{0.5}}
	})

	It("should return the processes in selection order", func() {
		var labels []string
		for _, p := range Defaults(rng) {
			p.Configure(cu, cs)
			labels = append(labels, p.ProcessType())
			Expect(p.Sigma()).To(BeNumerically(">=", 0))
		}
		Expect(labels).To(Equal([]string{"Rutherford", "Elastic pn", "Elastic pp", "Single Diffractive", "Inelastic"}))
	})

	It("should take the sigmas from the cross sections", func() {
		processes := Defaults(rng)
		for _, p := range processes {
			p.Configure(cu, cs)
		}
		Expect(processes[0].Sigma()).To(Equal(cs.SigmaRutherford))
		Expect(processes[1].Sigma()).To(Equal(cs.SigmaPNElastic))
		Expect(processes[2].Sigma()).To(BeNumerically("~", cs.EffectiveNucleons*cs.SigmaPPElastic, 1e-15))
		Expect(processes[3].Sigma()).To(BeNumerically("~", cs.EffectiveNucleons*cs.SigmaPPSD, 1e-15))
		Expect(processes[4].Sigma()).To(Equal(cs.SigmaPNInelastic))
	})

	It("should absorb on inelastic interactions", func() {
		in := NewInelastic(rng)
		in.Configure(cu, cs)
		p := particle.PSvector{XP: 1e-6}
		Expect(in.Scatter(&p, E0)).To(BeTrue())
		Expect(p).To(Equal(particle.PSvector{XP: 1e-6}))
	})

	It("should kick elastic pn by sqrt(t)/E", func() {
		rng.draws = []float64{1 - 1/math.E, 0}
		pn := NewElasticPN(rng)
		pn.Configure(cu, cs)
		p := particle.PSvector{}
		Expect(pn.Scatter(&p, E0)).To(BeFalse())

		t := 1 / cs.NuclearSlope
		Expect(p.XP).To(BeNumerically("~", math.Sqrt(t)/E0, 1e-15))
		Expect(p.YP).To(BeNumerically("~", 0, 1e-15))
		Expect(p.DP).To(BeZero())
	})

	It("should keep elastic pp kicks at a uniform azimuth", func() {
		r := random.New(17)
		pp := NewElasticPP(r)
		pp.Configure(cu, cs)
		var sumX, sumY float64
		for range 20000 {
			p := particle.PSvector{}
			pp.Scatter(&p, E0)
			sumX += p.XP
			sumY += p.YP
			Expect(math.Hypot(p.XP, p.YP)).To(BeNumerically(">", 0))
		}
		// mean |theta| is about 1/sqrt(b)/E
		scale := 20000 / math.Sqrt(cs.PPSlope) / E0
		Expect(math.Abs(sumX)).To(BeNumerically("<", 0.05*scale))
		Expect(math.Abs(sumY)).To(BeNumerically("<", 0.05*scale))
	})

	It("should bound rutherford momentum transfer", func() {
		ru := NewRutherford(rng)
		ru.Configure(cu, cs)
		for _, u := range []float64{0, 0.999999} {
			rng.draws = []float64{u, 0}
			rng.calls = 0
			p := particle.PSvector{}
			ru.Scatter(&p, E0)
			t := p.XP * p.XP * E0 * E0
			Expect(t).To(BeNumerically(">=", RutherfordTLow*(1-1e-9)))
			Expect(t).To(BeNumerically("<=", RutherfordTHigh*(1+1e-9)))
		}
	})

	It("should lose momentum in single diffraction", func() {
		sd := NewSingleDiffractive(rng)
		sd.Configure(cu, cs)
		for _, u := range []float64{0.01, 0.3, 0.9} {
			rng.draws = []float64{u, 0.5, 0.25}
			rng.calls = 0
			p := particle.PSvector{}
			Expect(sd.Scatter(&p, E0)).To(BeFalse())
			xm2 := math.Exp(u * math.Log(0.15*cs.CentreOfMass2))
			Expect(p.DP).To(BeNumerically("~", -xm2/cs.CentreOfMass2, 1e-12))
			Expect(p.DP).To(BeNumerically(">", -0.15))
		}
	})
})
