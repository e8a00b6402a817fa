package sgf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"termflip/othello"
)

func TestSgfCoord(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "aa"},
		{2, 3, "cd"},
		{7, 7, "hh"},
		{11, 11, "ll"},
		{3, 2, "dc"},
	}
	for _, tt := range tests {
		got := sgfCoord(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("sgfCoord(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		outcome othello.Outcome
		want    string
	}{
		{othello.Outcome{Black: 34, White: 30, Winner: othello.Black}, "B+4"},
		{othello.Outcome{Black: 10, White: 54, Winner: othello.White}, "W+44"},
		{othello.Outcome{Black: 32, White: 32, Winner: othello.Empty}, "0"},
		{othello.Outcome{Black: 3, White: 0, Winner: othello.Black}, "B+3"},
	}
	for _, tt := range tests {
		got := FormatResult(tt.outcome)
		if got != tt.want {
			t.Errorf("FormatResult(%+v) = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestDescribeResult(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"B+4", "Black +4"},
		{"W+44", "White +44"},
		{"0", "Draw"},
		{"Draw", "Draw"},
		{"?", "Unfinished"},
		{"", "Unfinished"},
		{"Void", "Void"},
	}
	for _, tt := range tests {
		got := DescribeResult(tt.input)
		if got != tt.want {
			t.Errorf("DescribeResult(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewGameRecord(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Alice", "Bob")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	// File should exist
	if _, err := os.Stat(rec.FilePath); os.IsNotExist(err) {
		t.Fatal("SGF file not created")
	}

	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(content)

	for _, prop := range []string{"GM[2]", "FF[4]", "SZ[8]", "PB[Alice]", "PW[Bob]", "RE[?]", "GN[" + rec.GameID + "]"} {
		if !strings.Contains(s, prop) {
			t.Errorf("SGF missing property %s in:\n%s", prop, s)
		}
	}

	if !strings.HasPrefix(s, "(;") {
		t.Error("SGF should start with '(;'")
	}
	if len(rec.GameID) != 36 {
		t.Errorf("GameID = %q, want a uuid", rec.GameID)
	}
}

func TestNewGameRecordEscapesNames(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, `Al]ce`, `B\b`)
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	rec.Close()

	info, err := ParseHeader(rec.FilePath)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if info.PlayerBlack != "Al]ce" {
		t.Errorf("PlayerBlack = %q, want %q", info.PlayerBlack, "Al]ce")
	}
	if info.PlayerWhite != `B\b` {
		t.Errorf("PlayerWhite = %q, want %q", info.PlayerWhite, `B\b`)
	}
}

func TestAddMove(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Black", "White")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddMove(2, 3, othello.Black) // B[cd]
	rec.AddMove(2, 2, othello.White) // W[cc]
	rec.AddMove(3, 2, othello.Black) // B[dc]

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)

	if !strings.Contains(s, ";B[cd];W[cc];B[dc])") {
		t.Errorf("SGF missing moves in:\n%s", s)
	}
	if rec.MoveCount() != 3 {
		t.Errorf("MoveCount = %d, want 3", rec.MoveCount())
	}
}

func TestSetResult(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Black", "White")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.SetResult(othello.Outcome{Black: 20, White: 44, Winner: othello.White})

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)

	if !strings.Contains(s, "RE[W+24]") {
		t.Errorf("Expected RE[W+24] in:\n%s", s)
	}
}

func TestAddSetupPosition(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Black", "White")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	rec.AddSetupPosition(othello.NewBoard(8).Rows())

	content, _ := os.ReadFile(rec.FilePath)
	s := string(content)

	// Black on e4 and d5, white on d4 and e5.
	if !strings.Contains(s, ";AB[ed][de]AW[dd][ee]") {
		t.Errorf("Missing setup node in:\n%s", s)
	}
}

func TestFilenameFormat(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 10, "Black", "White")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	defer rec.Close()

	base := filepath.Base(rec.FilePath)
	if !strings.HasSuffix(base, "_10x10_"+rec.GameID[:8]+".sgf") {
		t.Errorf("Filename should end with _10x10_<id>.sgf, got %s", base)
	}
	if !strings.HasPrefix(base, "20") {
		t.Errorf("Filename should start with year, got %s", base)
	}
}

func TestCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Black", "White")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	rec.Close()
	rec.Close() // Should not panic

	if err := rec.AddMove(2, 3, othello.Black); err == nil {
		t.Error("AddMove after Close should fail")
	}
}

func TestCrashSafety(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Black", "White")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	rec.AddMove(2, 3, othello.Black)
	rec.AddMove(2, 2, othello.White)

	// The file should be valid SGF after each flush
	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	s := string(content)

	if !strings.HasPrefix(s, "(;") {
		t.Error("File should be valid SGF even without Close()")
	}
	if !strings.HasSuffix(strings.TrimSpace(s), ")") {
		t.Error("File should have closing paren even without Close()")
	}
	if !strings.Contains(s, ";B[cd]") {
		t.Error("File should contain moves even without Close()")
	}

	rec.Close()
}

func TestSaveLeavesOnlyRecord(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewGameRecord(dir, 8, "Black", "White")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	rec.AddMove(2, 3, othello.Black)
	rec.SetResult(othello.Outcome{Black: 4, White: 1, Winner: othello.Black})
	rec.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(rec.FilePath) {
		t.Errorf("history dir holds %v, want only the record", entries)
	}
	if err := rec.SetResult(othello.Outcome{}); err == nil {
		t.Error("SetResult after Close should fail")
	}
}
