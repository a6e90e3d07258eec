package pastpaper

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/pastpaper/model"
	"github.com/tsawler/pastpaper/segment"
)

// page builds a word-less test page from raw lines.
func page(lines ...string) model.Page {
	return model.Page{
		RawText: strings.Join(lines, "\n"),
		Width:   612,
		Height:  792,
	}
}

// threeQuestionPaper is the standard fixture: Q1 on pages 0-1, Q2 on
// page 2, Q3 on pages 3-4; MS header on page 1, Q1 rows on page 2,
// Q2 on pages 2-3, Q3 on page 4.
func threeQuestionPaper() ([]model.Page, []model.Page) {
	qpPages := []model.Page{
		page("1 State the value of x", "working space"),
		page("more working", "(Total for Question 1 = 4 marks)"),
		page("2 Solve the equation", "(Total for Question 2 = 3 marks)"),
		page("3 Prove that the result holds"),
		page("so the proof is complete", "(Total for Question 3 = 7 marks)"),
	}
	msPages := []model.Page{
		page("Mark scheme cover"),
		page("Question number Answer Marks"),
		page("1 (a) correct method M1 (2)", "1 (b) completes A1 (2)", "Total for question 1", "2 states the value B1 (1)"),
		page("2 (b) solves correctly M1 A1 (2)", "Total for question 2"),
		page("3 complete proof with justification (7)", "Total for question 3"),
	}
	return qpPages, msPages
}

func TestProcess_ThreeQuestionScenario(t *testing.T) {
	qpPages, msPages := threeQuestionPaper()

	result, err := NewPaper(qpPages, msPages).Process()
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(result.Records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(result.Records))
	}

	q1, q2, q3 := result.Records[0], result.Records[1], result.Records[2]

	if !reflect.DeepEqual(q1.QPPages, []int{0, 1}) {
		t.Errorf("Q1 QP pages = %v, want [0 1]", q1.QPPages)
	}
	if !reflect.DeepEqual(q2.QPPages, []int{2}) {
		t.Errorf("Q2 QP pages = %v, want [2]", q2.QPPages)
	}
	if !reflect.DeepEqual(q3.QPPages, []int{3, 4}) {
		t.Errorf("Q3 QP pages = %v, want [3 4]", q3.QPPages)
	}

	// Q2's MS span starts on the page shared with Q1's tail
	if !reflect.DeepEqual(q1.MSPages, []int{2}) {
		t.Errorf("Q1 MS pages = %v, want [2]", q1.MSPages)
	}
	if !reflect.DeepEqual(q2.MSPages, []int{2, 3}) {
		t.Errorf("Q2 MS pages = %v, want [2 3]", q2.MSPages)
	}
	if !reflect.DeepEqual(q3.MSPages, []int{4}) {
		t.Errorf("Q3 MS pages = %v, want [4]", q3.MSPages)
	}

	if q1.MarksQP == nil || *q1.MarksQP != 4 {
		t.Errorf("Q1 MarksQP = %v, want 4", q1.MarksQP)
	}
	if q1.MarksMS == nil || *q1.MarksMS != 4 {
		t.Errorf("Q1 MarksMS = %v, want 4", q1.MarksMS)
	}
	if q3.MarksMS == nil || *q3.MarksMS != 7 {
		t.Errorf("Q3 MarksMS = %v, want 7", q3.MarksMS)
	}
}

func TestProcess_Idempotent(t *testing.T) {
	qpPages, msPages := threeQuestionPaper()

	first, err1 := NewPaper(qpPages, msPages).Process()
	second, err2 := NewPaper(qpPages, msPages).Process()
	if err1 != nil || err2 != nil {
		t.Fatalf("Process failed: %v %v", err1, err2)
	}

	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Error("Repeated processing produced different records")
	}
	if !reflect.DeepEqual(first.Report.Issues, second.Report.Issues) {
		t.Error("Repeated processing produced different reports")
	}
}

func TestProcess_NoQuestionNumbersIsFatal(t *testing.T) {
	qpPages := []model.Page{page("Answer all questions")}
	msPages := []model.Page{page("General guidance only")}

	result, err := NewPaper(qpPages, msPages).Process()
	if !errors.Is(err, segment.ErrNoQuestionNumbers) {
		t.Fatalf("Expected ErrNoQuestionNumbers, got %v", err)
	}
	if result == nil || result.Report == nil {
		t.Fatal("A fatal error must still return a report")
	}
	if len(result.Records) != 0 {
		t.Errorf("No records expected on fatal error, got %d", len(result.Records))
	}
}

func TestProcess_ClampedEmptySpanIsFatal(t *testing.T) {
	// Question 3's start line sits on a page before question 2's span,
	// so clamping strips question 2 of every page
	qpPages := []model.Page{
		page("3 Prove that the result holds"),
		page("2 Solve the equation", "(Total for Question 2 = 3 marks)"),
		page("(Total for Question 3 = 7 marks)"),
	}
	msPages := []model.Page{page("2 solves correctly M1 (3)", "3 complete proof (7)")}

	result, err := NewPaper(qpPages, msPages).Process()
	if !errors.Is(err, segment.ErrEmptySpan) {
		t.Fatalf("Expected ErrEmptySpan, got %v", err)
	}
	if result == nil || !result.Report.HasFatal() {
		t.Fatal("Fatal issue must be recorded in the report")
	}
	if len(result.Records) != 0 {
		t.Errorf("No records expected on fatal error, got %d", len(result.Records))
	}
}

func TestProcess_MSFallbackSet(t *testing.T) {
	// No QP totals: the authoritative set comes from MS row markers
	qpPages := []model.Page{page("Answer all questions in the spaces provided")}
	msPages := []model.Page{
		page("Question number Answer Marks"),
		page("1 correct value B1 (1)", "2 full method M1 (2)"),
	}

	result, err := NewPaper(qpPages, msPages).Process()
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if got := result.Set.Numbers(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Fallback set = %v, want [1 2]", got)
	}
}

func TestProcess_ScrubbedBoilerplateInvisible(t *testing.T) {
	qpPages := []model.Page{
		page("3 Solve the equation", "Turn over"),
		page("DO NOT WRITE IN THIS AREA", "(Total for Question 3 = 7 marks)"),
	}
	msPages := []model.Page{page("3 correct B1 (1)")}

	result, err := NewPaper(qpPages, msPages).Process()
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(result.Records))
	}
	if !reflect.DeepEqual(result.Records[0].QPPages, []int{0, 1}) {
		t.Errorf("QP pages = %v, want [0 1]", result.Records[0].QPPages)
	}
}

func TestProcess_WithProfile(t *testing.T) {
	profile := segment.DefaultSubjectProfile()
	profile.BoilerplatePatterns = append(profile.BoilerplatePatterns, `(?i)^specimen paper$`)

	qpPages := []model.Page{
		page("SPECIMEN PAPER", "1 State the value", "(Total for Question 1 = 2 marks)"),
	}
	msPages := []model.Page{page("1 correct B1 (2)")}

	result, err := NewPaper(qpPages, msPages).WithProfile(profile).Process()
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(result.Records))
	}
}

func TestProcessBatch(t *testing.T) {
	qpPages, msPages := threeQuestionPaper()
	papers := []PaperInput{
		{ID: "good", QPPages: qpPages, MSPages: msPages},
		{ID: "bad", QPPages: []model.Page{page("nothing here")}, MSPages: []model.Page{page("nor here")}},
		{ID: "also-good", QPPages: qpPages, MSPages: msPages},
	}

	results := ProcessBatch(papers, 2)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Results keep input order; one failing paper never aborts the rest
	if results[0].ID != "good" || results[0].Err != nil {
		t.Errorf("Paper %q failed: %v", results[0].ID, results[0].Err)
	}
	if !errors.Is(results[1].Err, segment.ErrNoQuestionNumbers) {
		t.Errorf("Paper %q: expected fatal error, got %v", results[1].ID, results[1].Err)
	}
	if results[2].Err != nil || len(results[2].Result.Records) != 3 {
		t.Errorf("Paper %q: unexpected outcome", results[2].ID)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
