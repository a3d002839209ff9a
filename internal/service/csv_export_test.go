package service

import (
	"testing"

	"medread/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSessionCSV(t *testing.T) {
	session := &domain.ReadingSession{ImagesReviewed: 3, CorrectCount: 2, TotalTimeMs: 4000}
	responses := []*domain.SessionResponse{
		{ImageID: "img_1", UserDiagnosis: "normal", ActualCategory: "normal", IsCorrect: true, TimeTakenMs: 1000},
		{ImageID: "img_2", UserDiagnosis: "fracture, distal", ActualCategory: "fracture", IsCorrect: false, TimeTakenMs: 1500},
		{ImageID: "img_3", UserDiagnosis: "effusion", ActualCategory: "effusion", IsCorrect: true, TimeTakenMs: 1500},
	}

	data, err := RenderSessionCSV(session, responses)
	require.NoError(t, err)

	expected := "Image ID,Your Diagnosis,Actual Category,Correct,Time (ms)\n" +
		"img_1,normal,normal,True,1000\n" +
		"img_2,\"fracture, distal\",fracture,False,1500\n" +
		"img_3,effusion,effusion,True,1500\n" +
		"\n" +
		"SUMMARY\n" +
		"Total Images,3\n" +
		"Correct,2\n" +
		"Accuracy,66.7%\n" +
		"Avg Time (ms),1333\n"
	assert.Equal(t, expected, string(data))
}

func TestRenderSessionCSV_NothingReviewed(t *testing.T) {
	data, err := RenderSessionCSV(&domain.ReadingSession{}, nil)
	require.NoError(t, err)

	expected := "Image ID,Your Diagnosis,Actual Category,Correct,Time (ms)\n" +
		"\n" +
		"SUMMARY\n" +
		"Total Images,0\n" +
		"Correct,0\n" +
		"Accuracy,0.0%\n" +
		"Avg Time (ms),0\n"
	assert.Equal(t, expected, string(data))
}
