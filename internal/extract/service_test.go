package extract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/primary-workspace/asha-ai-techx/internal/llm"
	"github.com/primary-workspace/asha-ai-techx/internal/stt"
)

type mockLLM struct {
	result  llm.Result
	prompts []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string) llm.Result {
	m.prompts = append(m.prompts, prompt)
	return m.result
}

type mockTranscriber struct {
	transcription *stt.Transcription
	err           error
	calls         int
}

func (m *mockTranscriber) Transcribe(_ context.Context, _ []byte, _, _ string) (*stt.Transcription, error) {
	m.calls++
	return m.transcription, m.err
}

func newTestService(mock *mockLLM, tr stt.Transcriber) *Service {
	return NewService(mock, tr, zerolog.Nop())
}

func TestExtractVisitDataNonJSONYieldsDefaults(t *testing.T) {
	svc := newTestService(&mockLLM{result: llm.Result{Text: "I could not understand the transcript.", Success: true}}, nil)

	data := svc.ExtractVisitData(context.Background(), "some transcript")

	if data == nil {
		t.Fatal("extraction must never return nil")
	}
	if data.FollowUpRequired || data.ReferralNeeded {
		t.Error("booleans must default to false")
	}
	if data.PatientName != nil || data.VisitType != nil {
		t.Error("optional fields must default to nil")
	}
	if data.Symptoms == nil || data.ServicesProvided == nil {
		t.Error("slices must default to empty, not nil")
	}
}

func TestExtractVisitDataGenerationFailureYieldsDefaults(t *testing.T) {
	svc := newTestService(&mockLLM{result: llm.Result{Success: false, ErrorDetail: "timeout"}}, nil)

	data := svc.ExtractVisitData(context.Background(), "anything")
	if data == nil || data.FollowUpRequired || len(data.Symptoms) != 0 {
		t.Errorf("expected empty defaults on generation failure, got %+v", data)
	}
}

func TestExtractVisitDataParsesFencedJSON(t *testing.T) {
	reply := "```json\n{\"patient_name\": \"Sunita\", \"visit_type\": \"routine_checkup\", \"vitals\": {\"blood_pressure\": \"130/85\", \"weight_kg\": 55}, \"symptoms\": [\"headache\"], \"follow_up_required\": true}\n```"
	svc := newTestService(&mockLLM{result: llm.Result{Text: reply, Success: true}}, nil)

	data := svc.ExtractVisitData(context.Background(), "visited sunita today")

	if data.PatientName == nil || *data.PatientName != "Sunita" {
		t.Errorf("expected patient name Sunita, got %v", data.PatientName)
	}
	if data.Vitals.BloodPressure == nil || *data.Vitals.BloodPressure != "130/85" {
		t.Error("expected blood pressure to be parsed")
	}
	if !data.FollowUpRequired {
		t.Error("expected follow_up_required=true from model output")
	}
	if data.ReferralNeeded {
		t.Error("absent referral_needed must default to false")
	}
	if data.MedicinesDistributed == nil {
		t.Error("absent slices must be defaulted to empty")
	}
}

func TestExtractVisitDataSurroundingProse(t *testing.T) {
	reply := `Here is the extracted data: {"patient_name": "Meena", "symptoms": []} hope that helps!`
	svc := newTestService(&mockLLM{result: llm.Result{Text: reply, Success: true}}, nil)

	data := svc.ExtractVisitData(context.Background(), "t")
	if data.PatientName == nil || *data.PatientName != "Meena" {
		t.Errorf("expected the embedded JSON block to be recovered, got %+v", data)
	}
}

func TestVisitDataDefaultingIdempotent(t *testing.T) {
	name := "Radha"
	original := &VisitData{PatientName: &name, Symptoms: []string{"fever"}, FollowUpRequired: true}
	original.applyDefaults()

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	decoded := &VisitData{}
	if err := json.Unmarshal(encoded, decoded); err != nil {
		t.Fatal(err)
	}
	decoded.applyDefaults()

	if decoded.PatientName == nil || *decoded.PatientName != "Radha" {
		t.Error("explicitly-set fields must survive the round trip")
	}
	if len(decoded.Symptoms) != 1 || decoded.Symptoms[0] != "fever" {
		t.Error("symptoms must survive the round trip")
	}
	if !decoded.FollowUpRequired {
		t.Error("booleans must survive the round trip")
	}
	if decoded.CounselingTopics == nil {
		t.Error("absent slices must be filled with empty defaults")
	}
}

func TestExtractMedicalDataKeepsRawText(t *testing.T) {
	reply := `{"bp_systolic": 150, "bp_diastolic": 95, "symptoms": ["headache"], "mood": "tired", "is_emergency": false}`
	svc := newTestService(&mockLLM{result: llm.Result{Text: reply, Success: true}}, nil)

	data := svc.ExtractMedicalData(context.Background(), "BP 150 over 95, sir dard")

	if data.BPSystolic == nil || *data.BPSystolic != 150 {
		t.Errorf("expected systolic 150, got %v", data.BPSystolic)
	}
	if data.RawText != "BP 150 over 95, sir dard" {
		t.Errorf("raw text must carry the original transcript, got %q", data.RawText)
	}
}

func TestExtractMedicalDataDegradesToTranscriptOnly(t *testing.T) {
	svc := newTestService(&mockLLM{result: llm.Result{Success: false, ErrorDetail: "down"}}, nil)

	data := svc.ExtractMedicalData(context.Background(), "kuch samajh nahi aaya")
	if data.RawText != "kuch samajh nahi aaya" {
		t.Error("degraded result must still carry the transcript")
	}
	if data.Symptoms == nil || len(data.Symptoms) != 0 {
		t.Error("degraded result must carry an empty symptom list")
	}
	if data.IsEmergency {
		t.Error("degraded result must not guess an emergency")
	}
}

func TestProcessVoiceSubmissionMissingVitals(t *testing.T) {
	reply := `{"patient_name": "Sunita", "visit_type": "follow_up", "vitals": {}, "symptoms": ["fatigue"]}`
	svc := newTestService(&mockLLM{result: llm.Result{Text: reply, Success: true}}, nil)

	result, err := svc.ProcessVoiceSubmission(context.Background(), nil, "", "visited sunita, she is tired", "hi")
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, f := range result.MissingFields {
		if f == "vitals" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing fields should contain vitals, got %v", result.MissingFields)
	}
	if result.FollowUpQuestion == nil || *result.FollowUpQuestion == "" {
		t.Error("a follow-up question must be chosen when fields are missing")
	}
	if result.IsComplete {
		t.Error("result with missing fields must not be complete")
	}
}

func TestProcessVoiceSubmissionComplete(t *testing.T) {
	reply := `{"patient_name": "Sunita", "visit_type": "routine_checkup", "vitals": {"blood_pressure": "120/80", "weight_kg": 55, "temperature_celsius": 37.0}, "symptoms": ["headache"], "services_provided": ["bp check"], "observations": "looks pale"}`
	svc := newTestService(&mockLLM{result: llm.Result{Text: reply, Success: true}}, nil)

	result, err := svc.ProcessVoiceSubmission(context.Background(), nil, "", "full visit dictation", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsComplete {
		t.Errorf("expected complete result, missing=%v", result.MissingFields)
	}
	if result.FollowUpQuestion != nil {
		t.Error("complete results must not ask a follow-up question")
	}
	// patient_name, visit_type, bp, weight, temp, symptoms, services,
	// observations + two always-present booleans = 10/10
	if result.ConfidenceScore != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", result.ConfidenceScore)
	}
}

func TestProcessVoiceSubmissionConfidencePartial(t *testing.T) {
	reply := `{"patient_name": "Sunita", "vitals": {}, "symptoms": []}`
	svc := newTestService(&mockLLM{result: llm.Result{Text: reply, Success: true}}, nil)

	result, err := svc.ProcessVoiceSubmission(context.Background(), nil, "", "short note", "hi")
	if err != nil {
		t.Fatal(err)
	}
	// name + two booleans = 3/10
	if result.ConfidenceScore != 0.3 {
		t.Errorf("expected confidence 0.3, got %v", result.ConfidenceScore)
	}
}

func TestProcessVoiceSubmissionNoText(t *testing.T) {
	svc := newTestService(&mockLLM{}, nil)

	_, err := svc.ProcessVoiceSubmission(context.Background(), nil, "", "   ", "hi")
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("expected ErrNoTranscript, got %v", err)
	}
}

func TestProcessVoiceSubmissionTranscribesAudio(t *testing.T) {
	mock := &mockLLM{result: llm.Result{Text: `{"patient_name": "Gita", "vitals": {}}`, Success: true}}
	tr := &mockTranscriber{transcription: &stt.Transcription{Transcript: "gita se mili", Language: "hi"}}
	svc := newTestService(mock, tr)

	result, err := svc.ProcessVoiceSubmission(context.Background(), []byte("audio-bytes"), "rec.webm", "", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if tr.calls != 1 {
		t.Errorf("expected one transcription call, got %d", tr.calls)
	}
	if result.Transcription != "gita se mili" {
		t.Errorf("expected the transcribed text, got %q", result.Transcription)
	}
}

func TestProcessVoiceSubmissionEmptyTranscription(t *testing.T) {
	tr := &mockTranscriber{transcription: &stt.Transcription{Transcript: "   "}}
	svc := newTestService(&mockLLM{}, tr)

	_, err := svc.ProcessVoiceSubmission(context.Background(), []byte("audio"), "rec.webm", "", "hi")
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("empty transcription must surface ErrNoTranscript, got %v", err)
	}
}

func TestProcessVoiceSubmissionTranscriberError(t *testing.T) {
	tr := &mockTranscriber{err: errors.New("model unavailable")}
	svc := newTestService(&mockLLM{}, tr)

	_, err := svc.ProcessVoiceSubmission(context.Background(), []byte("audio"), "rec.webm", "", "hi")
	if err == nil || errors.Is(err, ErrNoTranscript) {
		t.Errorf("transcriber failure must be a distinct error, got %v", err)
	}
}
