package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"wayfare/config"
	"wayfare/services/dialogue"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

const (
	MaxFileSize      = 5 * 1024 * 1024 // 5MB (conservative buffer)
	AllowedExtension = ".wav"
)

func convertAudio(inputPath, outputPath string) error {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

// STTHandler transcribes an uploaded WAV clip and feeds the transcript
// through the dialogue engine, so a voice client gets the same replies as a
// text client.
type STTHandler struct {
	Dialogue dialogue.Service
}

func NewSTTHandler(svc dialogue.Service) *STTHandler {
	return &STTHandler{Dialogue: svc}
}

func (h *STTHandler) Transcribe(c *gin.Context) {
	// 1. Get language parameter (default to en-US)
	language := c.DefaultPostForm("language", "en-US")
	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// 2. Get audio file from multipart form
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio file is required",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	// 3. Validate file extension
	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != AllowedExtension {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid file type",
			"details": fmt.Sprintf("expected %s, got %s", AllowedExtension, ext),
		})
		return
	}

	// 4. Create temp file for original audio
	tempInput, err := os.CreateTemp("", "audio-*.wav")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create temp file",
			"details": err.Error(),
		})
		return
	}
	defer os.Remove(tempInput.Name())
	defer tempInput.Close()

	// 5. Save uploaded file to temp location
	if _, err := io.Copy(tempInput, io.LimitReader(file, MaxFileSize)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save audio file",
			"details": err.Error(),
		})
		return
	}

	// 6. Create temp file for converted audio
	tempOutput, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create output temp file",
			"details": err.Error(),
		})
		return
	}
	defer os.Remove(tempOutput.Name())
	defer tempOutput.Close()

	// 7. Convert audio to proper format
	if err := convertAudio(tempInput.Name(), tempOutput.Name()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio conversion failed",
			"details": err.Error(),
		})
		return
	}

	// 8. Read converted audio data
	audioData, err := os.ReadFile(tempOutput.Name())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read converted audio",
			"details": err.Error(),
		})
		return
	}

	// 9. Initialize Google STT client
	ctx := c.Request.Context()
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to initialize speech client",
			"details": err.Error(),
		})
		return
	}
	defer client.Close()

	// 10. Configure recognition request
	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1, // Mono
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	// 11. Process with Google STT
	resp, err := client.Recognize(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "speech recognition failed",
			"details": err.Error(),
		})
		return
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	text := strings.TrimSpace(transcript.String())

	if text == "" {
		c.JSON(http.StatusOK, gin.H{
			"session_id":    sessionID,
			"transcription": "",
			"response":      "I didn't catch that. Could you repeat it?",
		})
		return
	}

	// 12. Run the transcript through the dialogue engine
	reply, err := h.Dialogue.ProcessTurn(ctx, sessionID, text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to process transcription",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":    sessionID,
		"transcription": text,
		"response":      reply,
	})
}
