package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/hoikunavi/hoikunavi/internal/core/facility"
	"github.com/hoikunavi/hoikunavi/internal/core/snapshot"
	"github.com/hoikunavi/hoikunavi/pkg/kana"
)

// Known header aliases in the city's availability CSVs.
var (
	facilityIDHeaders = []string{"施設番号", "施設・事業所番号"}

	totalAcceptHeaders   = []string{"合計_受入可能", "入所可能人数（合計）", "入所可能人数", "合計"}
	totalWaitHeaders     = []string{"合計_入所待ち", "入所待ち人数（合計）", "入所待ち人数", "合計"}
	totalEnrolledHeaders = []string{"合計_入所児童", "入所児童数（合計）", "入所児童数", "合計"}
)

// fullWidthDigits maps age band 0-5 to its full-width header form.
const fullWidthDigits = "０１２３４５"

// ParseMaster parses the maintained facility master CSV.
//
// Rows without a facility_id are skipped. When the station reading column is
// blank but the station display name is already written in kana (some
// private railway stations are), the reading is derived by folding; kanji
// names stay without a reading for later manual enrichment.
func ParseMaster(reader io.Reader) ([]*facility.Facility, error) {
	rows, err := readRows(reader)
	if err != nil {
		return nil, err
	}

	facilities := make([]*facility.Facility, 0, len(rows))
	for _, r := range rows {
		id := r.get("facility_id")
		if id == "" {
			continue
		}

		f := &facility.Facility{
			ID:             id,
			Name:           r.get("name"),
			NameKana:       r.get("name_kana"),
			Ward:           r.get("ward"),
			Address:        r.get("address"),
			NearestStation: r.get("nearest_station"),
			StationKana:    r.get("station_kana"),
			WalkMinutes:    r.get("walk_minutes"),
			FacilityType:   r.get("facility_type"),
			Phone:          r.get("phone"),
			Website:        r.get("website"),
			MapURL:         r.get("map_url"),
		}

		f.Lat = parseCoordinate(r.get("lat"))
		f.Lng = parseCoordinate(r.get("lng"))

		if f.StationKana == "" {
			f.StationKana = deriveStationKana(f.NearestStation)
		}

		facilities = append(facilities, f)
	}

	return facilities, nil
}

// deriveStationKana folds a kana-spelled station display name into a
// hiragana reading. Returns "" when the name is not pure kana.
func deriveStationKana(station string) string {
	name := strings.TrimSuffix(strings.TrimSpace(station), "駅")
	if name == "" {
		return ""
	}
	folded := kana.FoldKatakanaToHiragana(name)
	if !kana.IsKanaReading(folded) {
		return ""
	}
	return folded
}

// MonthFiles holds the parsed rows of one month's publication, keyed by
// facility ID. Enrolled may be empty; the city has skipped that file before.
type MonthFiles struct {
	Accept   map[string]row
	Wait     map[string]row
	Enrolled map[string]row
}

// ParseMonthFiles reads the availability CSVs for one month. The enrolled
// reader may be nil.
func ParseMonthFiles(accept, wait, enrolled io.Reader) (*MonthFiles, error) {
	acceptRows, err := readRows(accept)
	if err != nil {
		return nil, fmt.Errorf("ingest: accept file: %w", err)
	}
	waitRows, err := readRows(wait)
	if err != nil {
		return nil, fmt.Errorf("ingest: wait file: %w", err)
	}

	files := &MonthFiles{
		Accept: indexByFacility(acceptRows),
		Wait:   indexByFacility(waitRows),
	}

	if enrolled != nil {
		enrolledRows, err := readRows(enrolled)
		if err != nil {
			return nil, fmt.Errorf("ingest: enrolled file: %w", err)
		}
		files.Enrolled = indexByFacility(enrolledRows)
	}

	return files, nil
}

// BuildSnapshots assembles one snapshot per facility present in the accept
// file, joining waiting and enrolled rows by facility ID.
func BuildSnapshots(files *MonthFiles, month string) []*snapshot.Snapshot {
	snapshots := make([]*snapshot.Snapshot, 0, len(files.Accept))

	for facilityID, acceptRow := range files.Accept {
		waitRow := files.Wait[facilityID]
		enrolledRow := files.Enrolled[facilityID]

		s := &snapshot.Snapshot{
			FacilityID: facilityID,
			Month:      month,
			Totals: snapshot.NewMeasure(
				parseCount(acceptRow.get(totalAcceptHeaders...)),
				parseCount(waitRow.get(totalWaitHeaders...)),
				parseCount(enrolledRow.get(totalEnrolledHeaders...)),
			),
			Ages: make(snapshot.AgeBands, 6),
		}

		for age := 0; age <= 5; age++ {
			s.Ages[fmt.Sprintf("%d", age)] = snapshot.NewMeasure(
				parseCount(acceptRow.get(ageHeaders(age, "受入可能")...)),
				parseCount(waitRow.get(ageHeaders(age, "入所待ち")...)),
				parseCount(enrolledRow.get(ageHeaders(age, "入所児童")...)),
			)
		}

		snapshots = append(snapshots, s)
	}

	return snapshots
}

// ageHeaders returns the header aliases for one age band: half-width digit,
// full-width digit, and the suffixed full-width variant.
func ageHeaders(age int, suffix string) []string {
	fw := string([]rune(fullWidthDigits)[age])
	return []string{
		fmt.Sprintf("%d歳児", age),
		fw + "歳児",
		fw + "歳児_" + suffix,
	}
}

// indexByFacility keys rows by their facility ID, dropping rows without one.
func indexByFacility(rows []row) map[string]row {
	indexed := make(map[string]row, len(rows))
	for _, r := range rows {
		if id := r.get(facilityIDHeaders...); id != "" {
			indexed[id] = r
		}
	}
	return indexed
}
