package ml

import (
	"math"
	"math/rand"
)

// GradientBoosting — градиентный бустинг неглубоких регрессионных
// деревьев на логистической функции потерь с ньютоновскими значениями
// листьев
type GradientBoosting struct {
	NEstimators  int
	LearningRate float64
	MaxDepth     int
	Seed         int64

	baseScore   float64
	trees       []*treeNode
	importances []float64
}

func NewGradientBoosting(seed int64) *GradientBoosting {
	return &GradientBoosting{
		NEstimators:  100,
		LearningRate: 0.1,
		MaxDepth:     3,
		Seed:         seed,
	}
}

func (gb *GradientBoosting) Fit(X [][]float64, y []int) {
	n := len(X)
	dim := len(X[0])
	rng := rand.New(rand.NewSource(gb.Seed))

	var positives float64
	for _, label := range y {
		positives += float64(label)
	}
	p := clampProbability(positives / float64(n))
	gb.baseScore = math.Log(p / (1 - p))

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = gb.baseScore
	}

	residuals := make([]float64, n)
	hessians := make([]float64, n)
	gb.trees = make([]*treeNode, 0, gb.NEstimators)
	gb.importances = make([]float64, dim)

	allIdx := make([]int, n)
	for i := range allIdx {
		allIdx[i] = i
	}

	for t := 0; t < gb.NEstimators; t++ {
		for i := range scores {
			prob := sigmoid(scores[i])
			residuals[i] = float64(y[i]) - prob
			hessians[i] = prob * (1 - prob)
		}

		settings := &treeSettings{
			X:               X,
			target:          residuals,
			maxDepth:        gb.MaxDepth,
			minSamplesSplit: 2,
			rng:             rng,
			importances:     gb.importances,
			leafValue: func(idx []int) float64 {
				var num, den float64
				for _, i := range idx {
					num += residuals[i]
					den += hessians[i]
				}
				return num / (den + 1e-12)
			},
		}
		tree := buildTree(settings, allIdx, 0)
		gb.trees = append(gb.trees, tree)

		for i, x := range X {
			scores[i] += gb.LearningRate * tree.predict(x)
		}
	}

	normalize(gb.importances)
}

func (gb *GradientBoosting) PredictProba(X [][]float64) []float64 {
	probs := make([]float64, len(X))
	for i, x := range X {
		score := gb.baseScore
		for _, tree := range gb.trees {
			score += gb.LearningRate * tree.predict(x)
		}
		probs[i] = sigmoid(score)
	}
	return probs
}

func (gb *GradientBoosting) Predict(X [][]float64) []int {
	return threshold(gb.PredictProba(X), 0.5)
}

func (gb *GradientBoosting) FeatureImportances() []float64 {
	out := make([]float64, len(gb.importances))
	copy(out, gb.importances)
	return out
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clampProbability(p float64) float64 {
	const eps = 1e-6
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}
