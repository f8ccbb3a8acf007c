package ml

import (
	"math/rand"
	"sort"
)

// treeNode представляет узел бинарного дерева решений. Для листа
// заполнено только value.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
	leaf      bool
}

// treeSettings описывает построение одного дерева. Критерий разбиения —
// снижение суммы квадратичных отклонений цели: для бинарных меток 0/1
// это эквивалентно критерию Джини.
type treeSettings struct {
	X               [][]float64
	target          []float64
	maxDepth        int
	minSamplesSplit int
	maxFeatures     int // 0 — перебирать все признаки
	rng             *rand.Rand
	importances     []float64               // аккумулятор снижения ошибки по признакам
	leafValue       func(idx []int) float64 // nil — среднее цели по листу
}

func buildTree(s *treeSettings, idx []int, depth int) *treeNode {
	if depth >= s.maxDepth || len(idx) < s.minSamplesSplit || pure(s.target, idx) {
		return &treeNode{leaf: true, value: s.leafFor(idx)}
	}

	feature, threshold, gain, ok := bestSplit(s, idx)
	if !ok {
		return &treeNode{leaf: true, value: s.leafFor(idx)}
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if s.X[i][feature] <= threshold {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}
	if len(leftIdx) == 0 || len(rightIdx) == 0 {
		return &treeNode{leaf: true, value: s.leafFor(idx)}
	}

	if s.importances != nil {
		s.importances[feature] += gain
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      buildTree(s, leftIdx, depth+1),
		right:     buildTree(s, rightIdx, depth+1),
	}
}

func (s *treeSettings) leafFor(idx []int) float64 {
	if s.leafValue != nil {
		return s.leafValue(idx)
	}
	var sum float64
	for _, i := range idx {
		sum += s.target[i]
	}
	return sum / float64(len(idx))
}

func pure(target []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if target[i] != target[idx[0]] {
			return false
		}
	}
	return true
}

// bestSplit перебирает кандидатные признаки и возвращает разбиение с
// максимальным снижением суммы квадратов отклонений
func bestSplit(s *treeSettings, idx []int) (feature int, threshold, gain float64, ok bool) {
	dim := len(s.X[0])
	candidates := make([]int, dim)
	for j := range candidates {
		candidates[j] = j
	}
	if s.maxFeatures > 0 && s.maxFeatures < dim {
		s.rng.Shuffle(dim, func(a, b int) { candidates[a], candidates[b] = candidates[b], candidates[a] })
		candidates = candidates[:s.maxFeatures]
	}

	var totalSum, totalSumSq float64
	for _, i := range idx {
		totalSum += s.target[i]
		totalSumSq += s.target[i] * s.target[i]
	}
	n := float64(len(idx))
	totalSSE := totalSumSq - totalSum*totalSum/n

	bestGain := 1e-12
	sorted := make([]int, len(idx))

	for _, f := range candidates {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool { return s.X[sorted[a]][f] < s.X[sorted[b]][f] })

		var leftSum, leftSumSq float64
		for pos := 0; pos < len(sorted)-1; pos++ {
			i := sorted[pos]
			leftSum += s.target[i]
			leftSumSq += s.target[i] * s.target[i]

			// Разбивать можно только между различимыми значениями
			cur, next := s.X[i][f], s.X[sorted[pos+1]][f]
			if cur == next {
				continue
			}

			nl := float64(pos + 1)
			nr := n - nl
			rightSum := totalSum - leftSum
			rightSumSq := totalSumSq - leftSumSq
			sse := (leftSumSq - leftSum*leftSum/nl) + (rightSumSq - rightSum*rightSum/nr)
			if g := totalSSE - sse; g > bestGain {
				bestGain = g
				feature = f
				threshold = (cur + next) / 2
				ok = true
			}
		}
	}
	return feature, threshold, bestGain, ok
}

func (node *treeNode) predict(x []float64) float64 {
	for !node.leaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}
