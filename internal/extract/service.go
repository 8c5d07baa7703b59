package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/primary-workspace/asha-ai-techx/internal/llm"
	"github.com/primary-workspace/asha-ai-techx/internal/stt"
)

// ErrNoTranscript is returned by ProcessVoiceSubmission when neither audio
// nor text yields anything to extract from.
var ErrNoTranscript = errors.New("no transcription provided or detected")

// Service turns free-text transcripts into structured records by prompting
// the generation backend for JSON and repairing/defaulting whatever comes
// back. Extraction never fails loudly: a degraded result is the empty default
// structure.
type Service struct {
	llm         llm.Client
	transcriber stt.Transcriber
	log         zerolog.Logger
}

func NewService(client llm.Client, transcriber stt.Transcriber, log zerolog.Logger) *Service {
	return &Service{llm: client, transcriber: transcriber, log: log}
}

const visitDataPrompt = `Extract structured visit data from this health worker's voice transcript.
The transcript may mix Hindi and English.
Return a JSON object with exactly these fields:
- patient_name: patient's name if mentioned (string or null)
- visit_type: one of "routine_checkup", "follow_up", "emergency" (string or null)
- vitals: object with blood_pressure (e.g. "130/85"), bp_systolic, bp_diastolic, weight_kg, temperature_celsius (each null if not mentioned)
- symptoms: array of symptoms mentioned
- severity: "mild", "moderate" or "severe" (string or null)
- services_provided: array of services performed during the visit
- medicines_distributed: array of medicines given
- counseling_topics: array of topics discussed
- observations: general observations (string or null)
- concerns_noted: concerns worth flagging (string or null)
- follow_up_required: boolean
- next_visit_date: date if mentioned (string or null)
- referral_needed: boolean
- referral_reason: reason if referral needed (string or null)

Transcript: "%s"

Respond ONLY with valid JSON.`

// ExtractVisitData prompts for the rigid visit schema and parses the reply.
// On generation or parse failure the empty default structure is returned.
func (s *Service) ExtractVisitData(ctx context.Context, transcript string) *VisitData {
	result := s.llm.Generate(ctx, fmt.Sprintf(visitDataPrompt, transcript))
	if !result.Success {
		s.log.Warn().Str("detail", result.ErrorDetail).Msg("visit data generation failed, returning defaults")
		return NewVisitData()
	}

	raw, ok := jsonBlock(result.Text)
	if !ok {
		s.log.Warn().Msg("no JSON object found in visit data response")
		return NewVisitData()
	}

	data := &VisitData{}
	if err := json.Unmarshal([]byte(raw), data); err != nil {
		s.log.Warn().Err(err).Msg("visit data JSON parse failed, returning defaults")
		return NewVisitData()
	}
	data.applyDefaults()
	return data
}

const medicalDataPrompt = `Extract medical information from this health-related transcript.
Return a JSON with these fields:
- bp_systolic: systolic blood pressure if mentioned (number or null)
- bp_diastolic: diastolic blood pressure if mentioned (number or null)
- symptoms: array of symptoms mentioned
- mood: detected mood (happy, neutral, sad, tired, anxious, pain)
- is_emergency: true if this sounds like an emergency

Transcript: "%s"

Respond ONLY with valid JSON.`

// ExtractMedicalData targets the narrow vitals+symptoms+mood schema used by
// risk assessment. RawText always carries the original transcript.
func (s *Service) ExtractMedicalData(ctx context.Context, transcript string) *MedicalData {
	fallback := &MedicalData{Symptoms: []string{}, RawText: transcript}

	result := s.llm.Generate(ctx, fmt.Sprintf(medicalDataPrompt, transcript))
	if !result.Success {
		s.log.Warn().Str("detail", result.ErrorDetail).Msg("medical data generation failed, returning defaults")
		return fallback
	}

	raw, ok := jsonBlock(result.Text)
	if !ok {
		return fallback
	}

	data := &MedicalData{}
	if err := json.Unmarshal([]byte(raw), data); err != nil {
		s.log.Warn().Err(err).Msg("medical data JSON parse failed, returning defaults")
		return fallback
	}
	if data.Symptoms == nil {
		data.Symptoms = []string{}
	}
	data.RawText = transcript
	return data
}

// followUpQuestions maps the first missing field to a fixed Hindi prompt the
// worker hears before re-recording.
var followUpQuestions = map[string]string{
	"patient_name": "कृपया मरीज़ का नाम बताएं।",
	"vitals":       "कृपया BP, वज़न या तापमान बताएं।",
	"visit_type":   "यह कौन सी विज़िट है - routine checkup, follow up, या emergency?",
}

// confidenceFieldCount is the fixed weighted tally size for the completeness
// score.
const confidenceFieldCount = 10

// ProcessVoiceSubmission runs the combined voice-intake workflow: transcribe
// when audio is given, extract visit data, flag missing fields, pick the
// follow-up question and compute the completeness score. No text to work with
// is a caller error, not a guessed structure.
func (s *Service) ProcessVoiceSubmission(ctx context.Context, audio []byte, filename, transcript, language string) (*ProcessResult, error) {
	if len(audio) > 0 {
		if s.transcriber == nil {
			return nil, fmt.Errorf("transcription is not configured")
		}
		tr, err := s.transcriber.Transcribe(ctx, audio, filename, language)
		if err != nil {
			return nil, fmt.Errorf("transcription failed: %w", err)
		}
		transcript = tr.Transcript
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, ErrNoTranscript
	}

	data := s.ExtractVisitData(ctx, transcript)

	var missing []string
	if data.PatientName == nil || *data.PatientName == "" {
		missing = append(missing, "patient_name")
	}
	if data.Vitals.Empty() {
		missing = append(missing, "vitals")
	}
	if data.VisitType == nil || *data.VisitType == "" {
		missing = append(missing, "visit_type")
	}

	var followUp *string
	if len(missing) > 0 {
		if q, ok := followUpQuestions[missing[0]]; ok {
			followUp = &q
		}
	}

	return &ProcessResult{
		Success:          true,
		Transcription:    transcript,
		ExtractedData:    data,
		ConfidenceScore:  confidenceScore(data),
		MissingFields:    missing,
		FollowUpQuestion: followUp,
		IsComplete:       len(missing) == 0,
	}, nil
}

// confidenceScore is filled-field-count / 10 over the fixed tally. The two
// booleans always count as filled because defaulting guarantees they are
// present.
func confidenceScore(d *VisitData) float64 {
	filled := 2 // follow_up_required and referral_needed are always present
	if d.PatientName != nil && *d.PatientName != "" {
		filled++
	}
	if d.VisitType != nil && *d.VisitType != "" {
		filled++
	}
	if d.Vitals.BloodPressure != nil && *d.Vitals.BloodPressure != "" {
		filled++
	}
	if d.Vitals.WeightKg != nil {
		filled++
	}
	if d.Vitals.TemperatureCelsius != nil {
		filled++
	}
	if len(d.Symptoms) > 0 {
		filled++
	}
	if len(d.ServicesProvided) > 0 {
		filled++
	}
	if d.Observations != nil && *d.Observations != "" {
		filled++
	}
	return math.Round(float64(filled)/confidenceFieldCount*100) / 100
}

var (
	fenceRe     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// jsonBlock strips code-fence markers if present and returns the first
// {...} block found in the model output.
func jsonBlock(text string) (string, bool) {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	block := jsonBlockRe.FindString(text)
	if block == "" {
		return "", false
	}
	return block, true
}
