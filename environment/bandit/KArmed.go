// Package bandit implements multi-armed bandit environments
package bandit

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gomdp/mdp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Arm is the index of an arm of a bandit
type Arm int

func (a Arm) String() string {
	return fmt.Sprintf("Arm(%d)", int(a))
}

// KArmed is a k-armed Gaussian bandit. The mean reward of each arm is
// drawn from a standard normal distribution when the bandit is
// created, and each pull of an arm returns its mean plus standard
// normal noise.
type KArmed struct {
	means []float64
	arms  *mdp.Sampler[Arm]
	noise distuv.Normal
}

// NewKArmed returns a new KArmed bandit with k arms. All randomness
// is drawn from sources seeded by seed.
func NewKArmed(k int, seed uint64) (*KArmed, error) {
	if k <= 0 {
		return nil, errors.Errorf("k-armed bandit: k = %d must be "+
			"positive", k)
	}

	meanDist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	means := make([]float64, k)
	arms := make([]Arm, k)
	for i := range means {
		means[i] = meanDist.Rand()
		arms[i] = Arm(i)
	}

	return &KArmed{
		means: means,
		arms:  mdp.NewSampler(arms, seed+1),
		noise: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed + 2)},
	}, nil
}

// K returns the number of arms
func (b *KArmed) K() int {
	return len(b.means)
}

// Actions returns a Sampler over the arms of the bandit
func (b *KArmed) Actions() *mdp.Sampler[Arm] {
	return b.arms
}

// Reward returns a noisy reward for pulling arm. Reward panics if arm
// is not an arm of the bandit.
func (b *KArmed) Reward(arm Arm) float64 {
	if arm < 0 || int(arm) >= len(b.means) {
		panic(fmt.Sprintf("reward: no arm %d in %d-armed bandit", arm,
			len(b.means)))
	}
	return b.means[arm] + b.noise.Rand()
}

// Mean returns the expected reward of arm
func (b *KArmed) Mean(arm Arm) float64 {
	return b.means[arm]
}

// Optimal returns the arm with the highest expected reward
func (b *KArmed) Optimal() Arm {
	return Arm(floats.MaxIdx(b.means))
}

func (b *KArmed) String() string {
	return fmt.Sprintf("KArmed | k: %d  |  optimal: %v", len(b.means),
		b.Optimal())
}
