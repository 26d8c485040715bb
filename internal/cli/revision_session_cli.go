package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/at-ishikawa/hafiz/internal/hifz"
	"github.com/at-ishikawa/hafiz/internal/quran"
)

// RevisionSessionCLI grades the pages of a revision session one by one
type RevisionSessionCLI struct {
	*InteractiveCLI
	session  *hifz.RevisionSession
	location *time.Location
}

// NewRevisionSessionCLI creates a revision session CLI. Nil stdin and stdout
// default to the process streams.
func NewRevisionSessionCLI(session *hifz.RevisionSession, location *time.Location, stdin io.Reader, stdout io.Writer) *RevisionSessionCLI {
	if location == nil {
		location = time.Local
	}
	return &RevisionSessionCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		session:        session,
		location:       location,
	}
}

// answer is one parsed line of user input
type answer struct {
	quality hifz.Quality
	skip    bool
	quit    bool
}

func parseAnswer(input string) (answer, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "a", "again":
		return answer{quality: hifz.QualityAgain}, true
	case "2", "h", "hard":
		return answer{quality: hifz.QualityHard}, true
	case "3", "g", "good":
		return answer{quality: hifz.QualityGood}, true
	case "4", "e", "easy":
		return answer{quality: hifz.QualityEasy}, true
	case "s", "skip":
		return answer{skip: true}, true
	case "q", "quit":
		return answer{quit: true}, true
	}
	return answer{}, false
}

// Session handles a single page of the session
func (r *RevisionSessionCLI) Session(ctx context.Context) error {
	w := r.stdoutWriter
	current, ok := r.session.Current()
	if !ok {
		r.writeSummary()
		return errEnd
	}

	surah := quran.SurahByPage(current.PageNumber)
	fmt.Fprintf(w, "[%d/%d] ", r.session.Position()+1, r.session.Len())
	_, _ = r.bold.Fprintf(w, "Page %d", current.PageNumber)
	fmt.Fprintf(w, " (%s, juz %d) %s, revised %d times\n",
		surah.EnglishName,
		quran.JuzOfPage(current.PageNumber),
		formatStatus(current.Status, 0),
		current.RevisionCount,
	)
	fmt.Fprint(w, "How well did you recite it? [1] again [2] hard [3] good [4] easy [s] skip [q] quit: ")

	input, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(input) == "" {
			fmt.Fprintln(w)
			r.writeSummary()
			return errEnd
		}
		if err != io.EOF {
			return fmt.Errorf("error reading input: %w", err)
		}
	}

	ans, ok := parseAnswer(input)
	if !ok {
		fmt.Fprintf(w, "Unknown answer %q\n\n", strings.TrimSpace(input))
		return nil
	}
	switch {
	case ans.quit:
		r.writeSummary()
		return errEnd
	case ans.skip:
		if err := r.session.Skip(); err != nil {
			return fmt.Errorf("session.Skip() > %w", err)
		}
		fmt.Fprintln(w)
		return nil
	}

	record, err := r.session.Grade(ctx, ans.quality)
	if err != nil {
		if !errors.Is(err, hifz.ErrNotPersisted) {
			return fmt.Errorf("session.Grade() > %w", err)
		}
		fmt.Fprintf(w, "warning: page %d was graded but not saved: %v\n", record.PageNumber, err)
	}
	fmt.Fprintf(w, "%s: next revision in %d days (%s)\n\n",
		formatQuality(ans.quality),
		record.Interval,
		formatTime(record.NextRevisionDue, r.location, dateLayout),
	)
	return nil
}

func (r *RevisionSessionCLI) writeSummary() {
	w := r.stdoutWriter
	results := r.session.Results()
	if r.session.Len() == 0 {
		fmt.Fprintf(w, "No pages to revise in %s mode.\n", r.session.Mode())
		return
	}

	_, _ = r.bold.Fprintf(w, "Revised %d of %d pages\n", len(results), r.session.Len())
	counts := r.session.QualityCounts()
	parts := make([]string, 0, len(hifz.Qualities))
	for _, q := range hifz.Qualities {
		parts = append(parts, fmt.Sprintf("%s %d", formatQuality(q), counts[q]))
	}
	fmt.Fprintln(w, strings.Join(parts, ", "))
}

// Run starts the interactive loop
func (r *RevisionSessionCLI) Run(ctx context.Context) error {
	return r.InteractiveCLI.Run(ctx, r)
}
