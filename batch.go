package contentlens

// URLError pairs a failed URL with its human-readable reason.
type URLError struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// BatchReport aggregates the results of a batch analysis. It is built
// only after every per-URL pipeline has reached a terminal state.
type BatchReport struct {
	TotalURLs                  int               `json:"totalUrls"`
	Succeeded                  int               `json:"succeeded"`
	Failed                     int               `json:"failed"`
	Results                    []*AnalysisResult `json:"results"`
	Errors                     []URLError        `json:"errors"`
	CategoryDistribution       map[string]int    `json:"categoryDistribution"`
	AverageQualityScore        *float64          `json:"averageQualityScore,omitempty"`
	TotalProcessingTimeSeconds float64           `json:"totalProcessingTimeSeconds"`
}

// BuildBatchReport partitions results by status and computes the batch
// summary statistics. Results keep their input order; the category
// distribution and average quality score cover successful results
// only, and the average is nil when nothing succeeded.
func BuildBatchReport(results []*AnalysisResult) *BatchReport {
	report := &BatchReport{
		TotalURLs:            len(results),
		Results:              results,
		Errors:               []URLError{},
		CategoryDistribution: map[string]int{},
	}

	var qualityTotal float64
	for _, r := range results {
		report.TotalProcessingTimeSeconds += r.ProcessingTimeSeconds

		if r.Status == StatusSuccess {
			report.Succeeded++
			report.CategoryDistribution[r.PrimaryCategory]++
			qualityTotal += r.QualityScore
			continue
		}

		report.Failed++
		reason := r.Summary
		if reason == "" {
			reason = "Unknown error"
		}
		report.Errors = append(report.Errors, URLError{URL: r.URL, Error: reason})
	}

	if report.Succeeded > 0 {
		avg := qualityTotal / float64(report.Succeeded)
		report.AverageQualityScore = &avg
	}

	return report
}
