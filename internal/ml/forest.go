package ml

import (
	"math"
	"math/rand"
)

// RandomForest — ансамбль деревьев на бутстреп-выборках со случайным
// подмножеством признаков в каждом разбиении
type RandomForest struct {
	NEstimators int
	MaxDepth    int
	Seed        int64

	trees       []*treeNode
	importances []float64
}

func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{
		NEstimators: 100,
		MaxDepth:    10,
		Seed:        seed,
	}
}

func (rf *RandomForest) Fit(X [][]float64, y []int) {
	n := len(X)
	dim := len(X[0])
	target := make([]float64, n)
	for i, label := range y {
		target[i] = float64(label)
	}

	rng := rand.New(rand.NewSource(rf.Seed))
	rf.trees = make([]*treeNode, 0, rf.NEstimators)
	rf.importances = make([]float64, dim)

	maxFeatures := int(math.Sqrt(float64(dim)))
	if maxFeatures < 1 {
		maxFeatures = 1
	}

	for t := 0; t < rf.NEstimators; t++ {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = rng.Intn(n)
		}
		settings := &treeSettings{
			X:               X,
			target:          target,
			maxDepth:        rf.MaxDepth,
			minSamplesSplit: 2,
			maxFeatures:     maxFeatures,
			rng:             rng,
			importances:     rf.importances,
		}
		rf.trees = append(rf.trees, buildTree(settings, idx, 0))
	}

	normalize(rf.importances)
}

func (rf *RandomForest) PredictProba(X [][]float64) []float64 {
	probs := make([]float64, len(X))
	for i, x := range X {
		var sum float64
		for _, tree := range rf.trees {
			sum += tree.predict(x)
		}
		probs[i] = sum / float64(len(rf.trees))
	}
	return probs
}

func (rf *RandomForest) Predict(X [][]float64) []int {
	return threshold(rf.PredictProba(X), 0.5)
}

func (rf *RandomForest) FeatureImportances() []float64 {
	out := make([]float64, len(rf.importances))
	copy(out, rf.importances)
	return out
}

func normalize(values []float64) {
	var total float64
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}

func threshold(probs []float64, cutoff float64) []int {
	labels := make([]int, len(probs))
	for i, p := range probs {
		if p >= cutoff {
			labels[i] = 1
		}
	}
	return labels
}
