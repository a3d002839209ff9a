package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"medread/internal/domain"
)

var csvHeader = []string{"Image ID", "Your Diagnosis", "Actual Category", "Correct", "Time (ms)"}

// RenderSessionCSV writes one row per response, a blank line, then the SUMMARY block.
// Accuracy and average time are 0 when nothing was reviewed.
func RenderSessionCSV(session *domain.ReadingSession, responses []*domain.SessionResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(responses)+7)
	records = append(records, csvHeader)
	for _, r := range responses {
		records = append(records, []string{
			r.ImageID,
			r.UserDiagnosis,
			r.ActualCategory,
			correctLabel(r.IsCorrect),
			strconv.FormatInt(r.TimeTakenMs, 10),
		})
	}
	records = append(records,
		[]string{""},
		[]string{"SUMMARY"},
		[]string{"Total Images", strconv.Itoa(session.ImagesReviewed)},
		[]string{"Correct", strconv.Itoa(session.CorrectCount)},
		[]string{"Accuracy", fmt.Sprintf("%.1f%%", session.Accuracy())},
		[]string{"Avg Time (ms)", fmt.Sprintf("%.0f", session.AverageTimeMs())},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func correctLabel(ok bool) string {
	if ok {
		return "True"
	}
	return "False"
}
