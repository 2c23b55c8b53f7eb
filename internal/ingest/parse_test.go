package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/hoikunavi/hoikunavi/internal/ingest"
)

const masterCSV = `facility_id,name,name_kana,ward,address,nearest_station,station_kana,walk_minutes,facility_type,lat,lng
k001,ひよし保育園,ひよしほいくえん,港北区,横浜市港北区日吉1-2-3,日吉駅,ひよし,7,認可保育所,35.5533,139.6467
k002,つなしま園,,港北区,,綱島駅,,12,,,
k003,カナカナ園,,港北区,,ニュータウン駅,,,,,
,ヘッダーなし行,,,,,,,,,
`

/*
TestParseMaster verifies field mapping, the skip of rows without an ID, and
kana derivation for kana-spelled station names.
*/
func TestParseMaster(t *testing.T) {
	facilities, err := ingest.ParseMaster(strings.NewReader(masterCSV))
	require.NoError(t, err)
	require.Len(t, facilities, 3)

	first := facilities[0]
	assert.Equal(t, "k001", first.ID)
	assert.Equal(t, "ひよし保育園", first.Name)
	assert.Equal(t, "ひよし", first.StationKana)
	assert.Equal(t, "7", first.WalkMinutes)
	require.NotNil(t, first.Lat)
	assert.InDelta(t, 35.5533, *first.Lat, 1e-6)

	// 綱島駅 is kanji: no derivable reading.
	assert.Equal(t, "", facilities[1].StationKana)
	assert.Nil(t, facilities[1].Lat)

	// ニュータウン駅 is katakana: reading derived by folding, suffix stripped.
	assert.Equal(t, "にゅーたうん", facilities[2].StationKana)
}

const acceptCSV = `施設番号,施設・事業名,合計,0歳児,1歳児,2歳児,3歳児,4歳児,5歳児
k001,ひよし保育園,5,1,2,2,0,0,0
k002,つなしま園,0,0,0,,0,0,0
`

const waitCSV = `施設番号,合計,0歳児,1歳児,2歳児,3歳児,4歳児,5歳児
k001,3,2,1,0,0,0,0
k002,8,4,3,1,0,0,0
`

const enrolledCSV = `施設番号,合計,0歳児,1歳児,2歳児,3歳児,4歳児,5歳児
k001,55,5,10,10,10,10,10
`

/*
TestBuildSnapshots checks the three-file join, totals/age derivation, and
graceful handling of a facility missing from the enrolled file.
*/
func TestBuildSnapshots(t *testing.T) {
	files, err := ingest.ParseMonthFiles(
		strings.NewReader(acceptCSV),
		strings.NewReader(waitCSV),
		strings.NewReader(enrolledCSV),
	)
	require.NoError(t, err)

	snapshots := ingest.BuildSnapshots(files, "2026-04-01")
	require.Len(t, snapshots, 2)

	byID := map[string]int{}
	for i, s := range snapshots {
		byID[s.FacilityID] = i
	}

	full := snapshots[byID["k001"]]
	require.NotNil(t, full.Totals.Accept)
	assert.Equal(t, 5, *full.Totals.Accept)
	require.NotNil(t, full.Totals.Capacity)
	assert.Equal(t, 60, *full.Totals.Capacity) // 55 enrolled + 5 accept
	require.NotNil(t, full.Totals.WaitPerCapacity)
	assert.InDelta(t, 0.05, *full.Totals.WaitPerCapacity, 1e-9)

	age0 := full.Ages["0"]
	require.NotNil(t, age0.Capacity)
	assert.Equal(t, 6, *age0.Capacity) // 5 enrolled + 1 accept
	require.NotNil(t, age0.Wait)
	assert.Equal(t, 2, *age0.Wait)

	// k002 has no enrolled row: capacity and ratio stay unknown.
	partial := snapshots[byID["k002"]]
	assert.Nil(t, partial.Totals.Enrolled)
	assert.Nil(t, partial.Totals.Capacity)
	assert.Nil(t, partial.Totals.WaitPerCapacity)
	require.NotNil(t, partial.Totals.Wait)
	assert.Equal(t, 8, *partial.Totals.Wait)

	// Blank 2歳児 accept cell is unknown, not zero.
	assert.Nil(t, partial.Ages["2"].Accept)
}

/*
TestParseMonthFiles_NoEnrolled verifies the enrolled file is optional.
*/
func TestParseMonthFiles_NoEnrolled(t *testing.T) {
	files, err := ingest.ParseMonthFiles(
		strings.NewReader(acceptCSV),
		strings.NewReader(waitCSV),
		nil,
	)
	require.NoError(t, err)

	snapshots := ingest.BuildSnapshots(files, "2026-04-01")
	require.Len(t, snapshots, 2)
	for _, s := range snapshots {
		assert.Nil(t, s.Totals.Enrolled)
		assert.Nil(t, s.Totals.Capacity)
	}
}

/*
TestParseMaster_ShiftJIS checks the encoding sniff on a CP932 document.
*/
func TestParseMaster_ShiftJIS(t *testing.T) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(masterCSV))
	require.NoError(t, err)

	facilities, err := ingest.ParseMaster(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, facilities, 3)
	assert.Equal(t, "ひよし保育園", facilities[0].Name)
}
