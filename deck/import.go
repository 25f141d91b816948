package deck

import (
	"time"

	"github.com/adamspd/medstudy/models"
	"github.com/adamspd/medstudy/utils"
)

// ImportSources parses and normalizes every source and merges the result
// into existing. Sources that fail to parse are reported and skipped. When
// nothing importable survives, ErrNoImportable is returned together with
// the unchanged store.
func ImportSources(existing []models.Question, sources ...models.ImportSource) ([]models.Question, *models.ImportResult, error) {
	utils.LogImport("Starting import of %d source(s)", len(sources))
	start := time.Now()

	result := &models.ImportResult{
		Sources: make([]models.SourceReport, 0, len(sources)),
		Errors:  make([]string, 0),
	}

	var incoming []models.Question
	for _, src := range sources {
		report := models.SourceReport{
			Name:        src.Name,
			Fingerprint: utils.Fingerprint(src.Data),
		}

		raw, err := ParseSource(src.Name, src.Data)
		if err != nil {
			utils.LogImport("SKIP: %v", err)
			report.Error = err.Error()
			result.Errors = append(result.Errors, err.Error())
			result.Sources = append(result.Sources, report)
			continue
		}

		questions, nr := NormalizeWithReport(raw)
		report.Accepted = nr.Accepted
		report.Discarded = nr.Discarded
		result.Sources = append(result.Sources, report)

		result.TotalQuestions += nr.Received
		result.SkippedQuestions += nr.Discarded
		result.Defaulted = append(result.Defaulted, nr.Defaulted...)
		incoming = append(incoming, questions...)

		utils.LogImport("Source %s (%s): %d accepted, %d discarded",
			src.Name, report.Fingerprint[:12], nr.Accepted, nr.Discarded)
	}

	if len(incoming) == 0 {
		result.StoreSize = len(existing)
		result.TimeTaken = time.Since(start).String()
		utils.LogImport("No importable questions in %d source(s)", len(sources))
		return existing, result, ErrNoImportable
	}

	result.NewQuestions, result.UpdatedQuestions = MergeCounts(existing, incoming)
	result.ImportedQuestions = len(incoming)
	merged := Merge(existing, incoming)
	result.StoreSize = len(merged)
	result.TimeTaken = time.Since(start).String()

	utils.LogImport("Import completed: %d imported (%d new, %d updated), %d skipped, %d errors in %s",
		result.ImportedQuestions, result.NewQuestions, result.UpdatedQuestions,
		result.SkippedQuestions, len(result.Errors), result.TimeTaken)

	return merged, result, nil
}
