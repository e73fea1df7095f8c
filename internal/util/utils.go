package util

// CalculateThroughput returns completed processes per unit of simulated time.
func CalculateThroughput(processCount, totalTime int) float64 {
	if totalTime <= 0 {
		return 0
	}
	return float64(processCount) / float64(totalTime)
}
