package segmentation

import (
	"math"
	"math/rand"
)

const maxKMeansIterations = 300

// kmeans разбивает точки на k кластеров и возвращает индекс кластера
// для каждой точки. Первый центроид выбирается сеяным генератором,
// остальные — самые удаленные от уже выбранных, поэтому при
// фиксированном зерне результат детерминирован.
func kmeans(points [][]float64, k int, seed int64) []int {
	n := len(points)
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	dim := len(points[0])

	rng := rand.New(rand.NewSource(seed))
	centroids := make([][]float64, 0, k)
	first := make([]float64, dim)
	copy(first, points[rng.Intn(n)])
	centroids = append(centroids, first)

	for len(centroids) < k {
		bestIdx := 0
		bestDist := -1.0
		for i := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if dist := squaredDistance(points[i], c); dist < d {
					d = dist
				}
			}
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		next := make([]float64, dim)
		copy(next, points[bestIdx])
		centroids = append(centroids, next)
	}

	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}

	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, p := range points {
			best := 0
			bestDist := math.Inf(1)
			for j, c := range centroids {
				if d := squaredDistance(p, c); d < bestDist {
					bestDist = d
					best = j
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for j := range sums {
			sums[j] = make([]float64, dim)
		}
		for i, p := range points {
			counts[assign[i]]++
			for d, v := range p {
				sums[assign[i]][d] += v
			}
		}
		for j := range centroids {
			// Опустевший кластер оставляет центроид на месте
			if counts[j] == 0 {
				continue
			}
			for d := range centroids[j] {
				centroids[j][d] = sums[j][d] / float64(counts[j])
			}
		}
	}

	return assign
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
