package analyze

import "korpus/internal/model"

// Quality derives vocabulary quality metrics from a word frequency table
func Quality(table *model.FrequencyTable) *model.QualityMetrics {
	vocab := table.Len()
	total := table.Total

	m := &model.QualityMetrics{}
	if vocab == 0 || total == 0 {
		return m
	}

	var lengthSum int
	for _, e := range table.Entries {
		switch e.Count {
		case 1:
			m.HapaxLegomena++
		case 2:
			m.DisLegomena++
		}
		lengthSum += len([]rune(e.Symbol)) * e.Count
	}

	m.TypeTokenRatio = float64(vocab) / float64(total)
	m.HapaxFraction = float64(m.HapaxLegomena) / float64(vocab)
	m.DisFraction = float64(m.DisLegomena) / float64(vocab)
	m.AvgWordLength = float64(lengthSum) / float64(total)
	return m
}
