package ml

// LogisticRegression — линейный классификатор, обучаемый полным
// градиентным спуском. Ожидает стандартизованные признаки.
type LogisticRegression struct {
	LearningRate float64
	Iterations   int

	weights []float64
	bias    float64
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate: 0.1,
		Iterations:   1000,
	}
}

func (lr *LogisticRegression) Fit(X [][]float64, y []int) {
	n := len(X)
	dim := len(X[0])
	lr.weights = make([]float64, dim)
	lr.bias = 0

	gradW := make([]float64, dim)
	for iter := 0; iter < lr.Iterations; iter++ {
		for j := range gradW {
			gradW[j] = 0
		}
		var gradB float64

		for i, x := range X {
			score := lr.bias
			for j, v := range x {
				score += lr.weights[j] * v
			}
			diff := sigmoid(score) - float64(y[i])
			for j, v := range x {
				gradW[j] += diff * v
			}
			gradB += diff
		}

		for j := range lr.weights {
			lr.weights[j] -= lr.LearningRate * gradW[j] / float64(n)
		}
		lr.bias -= lr.LearningRate * gradB / float64(n)
	}
}

func (lr *LogisticRegression) PredictProba(X [][]float64) []float64 {
	probs := make([]float64, len(X))
	for i, x := range X {
		score := lr.bias
		for j, v := range x {
			score += lr.weights[j] * v
		}
		probs[i] = sigmoid(score)
	}
	return probs
}

func (lr *LogisticRegression) Predict(X [][]float64) []int {
	return threshold(lr.PredictProba(X), 0.5)
}
