package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/adamspd/medstudy/db"
	"github.com/adamspd/medstudy/deck"
	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
)

// maxImportBytes caps a single import body.
const maxImportBytes = 8 << 20

type QuestionHandlers struct {
	db *db.DB
}

func NewQuestionHandlers(database *db.DB) *QuestionHandlers {
	return &QuestionHandlers{db: database}
}

func (qh *QuestionHandlers) GetQuestions(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	questions, err := qh.db.GetQuestionsByCategory(category)
	if err != nil {
		utils.LogError("Failed to fetch questions: %v", err)
		http.Error(w, "Failed to fetch questions", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Returning %d questions (category %q)", len(questions), category)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
	})
}

func (qh *QuestionHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	questions, err := qh.db.GetQuestions()
	if err != nil {
		utils.LogError("Failed to fetch questions: %v", err)
		http.Error(w, "Failed to fetch categories", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": deck.Categories(questions),
		"counts":     deck.CountByCategory(questions),
	})
}

func (qh *QuestionHandlers) ImportQuestions(w http.ResponseWriter, r *http.Request) {
	utils.LogImport("Starting question import process")

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "upload.yaml"
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes+1))
	if err != nil {
		utils.LogError("Failed to read import body: %v", err)
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > maxImportBytes {
		utils.LogImport("Import body too large: %d bytes", len(body))
		http.Error(w, "Import too large", http.StatusRequestEntityTooLarge)
		return
	}
	if len(body) == 0 {
		utils.LogImport("No content provided in import request")
		http.Error(w, "No questions provided", http.StatusBadRequest)
		return
	}

	result, err := qh.db.ImportQuestions(models.ImportSource{Name: name, Data: body})
	if err != nil {
		if errors.Is(err, deck.ErrNoImportable) || errors.Is(err, deck.ErrUnparseable) {
			utils.LogImport("Import rejected: %v", err)
			writeJSON(w, http.StatusBadRequest, result)
			return
		}
		utils.LogError("Import failed: %v", err)
		http.Error(w, "Import failed", http.StatusInternalServerError)
		return
	}

	utils.LogImport("Import completed: %d imported, %d skipped, %d errors",
		result.ImportedQuestions, result.SkippedQuestions, len(result.Errors))

	if result.NewQuestions > 0 {
		writeJSON(w, http.StatusCreated, result)
	} else {
		writeJSON(w, http.StatusOK, result)
	}
}

func (qh *QuestionHandlers) GetImportHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := qh.db.GetImportHistory(limit)
	if err != nil {
		http.Error(w, "Failed to fetch import history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"imports": records,
	})
}
