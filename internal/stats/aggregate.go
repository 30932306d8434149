// Package stats turns a user's session history into progress rollups.
// Everything here is a pure function of its inputs.
package stats

import (
	"math"
	"slices"
	"time"

	"waltgoat/walker-app/internal/domain"
)

const (
	day = 24 * time.Hour

	// WeekWindow is the trailing window of the weekly totals and of the
	// challenge metrics.
	WeekWindow  = 7 * day
	monthWindow = 30 * day

	seriesCap     = 30
	dailyDays     = 14
	streakHorizon = 30

	kcalPerKm        = 60
	kcalPerCircuitMn = 5

	dateLayout = "2006-01-02"
)

type Totals struct {
	Km             float64 `json:"km"`
	Steps          int     `json:"passi"`
	WalkMinutes    float64 `json:"tempo_camminata_min"`
	Walks          int     `json:"camminate"`
	Circuits       int     `json:"allenamenti_circuito"`
	CircuitMinutes int     `json:"tempo_circuito_min"`
	VolumeKg       float64 `json:"volume_totale_kg"`
	Calories       int     `json:"calorie_stimate"`
	ActiveDays     int     `json:"giorni_attivi"`
}

// Window holds the rollup of the sessions newer than a cutoff.
type Window struct {
	Km             float64 `json:"km"`
	Steps          int     `json:"passi"`
	Walks          int     `json:"camminate"`
	Circuits       int     `json:"circuiti"`
	CircuitMinutes int     `json:"tempo_circuito_min"`
	VolumeKg       float64 `json:"volume_kg"`
	Calories       int     `json:"calorie"`
	MaxSpeedKmh    float64 `json:"velocita_max"`
}

type Records struct {
	BestKm         float64 `json:"best_km"`
	BestSteps      int     `json:"best_passi"`
	BestSpeedKmh   float64 `json:"best_velocita"`
	LongestWalkMin float64 `json:"camminata_piu_lunga_min"`
}

type Averages struct {
	KmPerWalk          float64 `json:"km_per_camminata"`
	SpeedKmh           float64 `json:"velocita_media"`
	CircuitDurationMin float64 `json:"durata_circuito_media"`
}

type ExerciseBest struct {
	MaxWeightKg float64 `json:"max_peso"`
	MaxReps     int     `json:"max_reps"`
}

type WalkPoint struct {
	Date  string  `json:"data"`
	Km    float64 `json:"km"`
	Steps int     `json:"passi"`
}

type CircuitPoint struct {
	Date        string  `json:"data"`
	VolumeKg    float64 `json:"volume"`
	DurationMin int     `json:"durata"`
}

type DailyPoint struct {
	Date     string  `json:"data"`
	Km       float64 `json:"km"`
	Steps    int     `json:"passi"`
	Circuits int     `json:"circuiti"`
	Minutes  float64 `json:"minuti"`
	Calories int     `json:"calorie"`
}

// Report is the full progress rollup of one user.
type Report struct {
	Totals            Totals                  `json:"totale"`
	Weekly            Window                  `json:"settimanale"`
	Monthly           Window                  `json:"mensile"`
	Records           Records                 `json:"record"`
	Averages          Averages                `json:"medie"`
	Streak            int                     `json:"streak"`
	VolumePerExercise map[string]float64      `json:"volume_per_esercizio"`
	ExerciseBests     map[string]ExerciseBest `json:"record_esercizi"`
	WalkSeries        []WalkPoint             `json:"grafici_camminate"`
	CircuitSeries     []CircuitPoint          `json:"grafici_circuiti"`
	DailySeries       []DailyPoint            `json:"grafici_giornalieri"`
	GeneratedAt       time.Time               `json:"generato_il"`
}

// Aggregate computes the report for the given sessions as seen at now.
// Input order does not matter.
func Aggregate(walks []domain.WalkSession, circuits []domain.CircuitSession, now time.Time) Report {
	now = now.UTC()
	walks = sortedWalks(walks)
	circuits = sortedCircuits(circuits)

	r := Report{
		VolumePerExercise: make(map[string]float64),
		ExerciseBests:     make(map[string]ExerciseBest),
		GeneratedAt:       now,
	}

	weekCut := now.Add(-WeekWindow)
	monthCut := now.Add(-monthWindow)
	activeDays := make(map[time.Time]struct{})

	var speedSum float64
	for _, w := range walks {
		minutes := w.DurationMinutes()
		r.Totals.Km += w.DistanceKm
		r.Totals.Steps += w.Steps
		r.Totals.WalkMinutes += minutes
		r.Totals.Walks++
		speedSum += w.AvgSpeedKmh

		r.Records.BestKm = max(r.Records.BestKm, w.DistanceKm)
		r.Records.BestSteps = max(r.Records.BestSteps, w.Steps)
		r.Records.BestSpeedKmh = max(r.Records.BestSpeedKmh, w.AvgSpeedKmh)
		r.Records.LongestWalkMin = max(r.Records.LongestWalkMin, minutes)

		if !w.Date.Before(weekCut) {
			r.Weekly.addWalk(w)
		}
		if !w.Date.Before(monthCut) {
			r.Monthly.addWalk(w)
		}
		activeDays[dayOf(w.Date)] = struct{}{}
	}

	for _, c := range circuits {
		volume := r.addCircuitLogs(c)
		r.Totals.Circuits++
		r.Totals.CircuitMinutes += c.DurationMinutes
		r.Totals.VolumeKg += volume

		if !c.Date.Before(weekCut) {
			r.Weekly.addCircuit(c, volume)
		}
		if !c.Date.Before(monthCut) {
			r.Monthly.addCircuit(c, volume)
		}
		activeDays[dayOf(c.Date)] = struct{}{}
	}

	r.Totals.Calories = calories(r.Totals.Km, float64(r.Totals.CircuitMinutes))
	r.Totals.ActiveDays = len(activeDays)
	r.Weekly.finish()
	r.Monthly.finish()

	if r.Totals.Walks > 0 {
		r.Averages.KmPerWalk = round1(r.Totals.Km / float64(r.Totals.Walks))
		r.Averages.SpeedKmh = round1(speedSum / float64(r.Totals.Walks))
	}
	if r.Totals.Circuits > 0 {
		r.Averages.CircuitDurationMin = round1(float64(r.Totals.CircuitMinutes) / float64(r.Totals.Circuits))
	}

	r.Streak = streak(activeDays, now)
	r.WalkSeries = walkSeries(walks)
	r.CircuitSeries = circuitSeries(circuits)
	r.DailySeries = dailySeries(walks, circuits, now)

	r.Totals.Km = round1(r.Totals.Km)
	r.Totals.WalkMinutes = round1(r.Totals.WalkMinutes)
	r.Totals.VolumeKg = round1(r.Totals.VolumeKg)
	r.Records.BestKm = round1(r.Records.BestKm)
	r.Records.BestSpeedKmh = round1(r.Records.BestSpeedKmh)
	r.Records.LongestWalkMin = round1(r.Records.LongestWalkMin)
	for id, v := range r.VolumePerExercise {
		r.VolumePerExercise[id] = round1(v)
	}

	return r
}

// addCircuitLogs folds every exercise log of c into the per-exercise maps and
// returns the circuit volume.
func (r *Report) addCircuitLogs(c domain.CircuitSession) float64 {
	var total float64
	for _, l := range c.Exercises {
		agg := resolveLog(l)
		v := agg.volume()
		total += v
		if l.ExerciseID == "" {
			continue
		}
		r.VolumePerExercise[l.ExerciseID] += v
		if weight, reps, ok := agg.best(); ok {
			b := r.ExerciseBests[l.ExerciseID]
			b.MaxWeightKg = max(b.MaxWeightKg, weight)
			b.MaxReps = max(b.MaxReps, reps)
			r.ExerciseBests[l.ExerciseID] = b
		}
	}
	return total
}

func (w *Window) addWalk(s domain.WalkSession) {
	w.Km += s.DistanceKm
	w.Steps += s.Steps
	w.Walks++
	w.MaxSpeedKmh = max(w.MaxSpeedKmh, s.AvgSpeedKmh)
}

func (w *Window) addCircuit(c domain.CircuitSession, volume float64) {
	w.Circuits++
	w.CircuitMinutes += c.DurationMinutes
	w.VolumeKg += volume
}

func (w *Window) finish() {
	w.Calories = calories(w.Km, float64(w.CircuitMinutes))
	w.Km = round1(w.Km)
	w.VolumeKg = round1(w.VolumeKg)
	w.MaxSpeedKmh = round1(w.MaxSpeedKmh)
}

// calories is 60 kcal per walked km plus 5 kcal per circuit minute.
func calories(km, circuitMinutes float64) int {
	return int(math.Round(kcalPerKm*km + kcalPerCircuitMn*circuitMinutes))
}

// streak counts consecutive UTC days with activity ending today.
func streak(active map[time.Time]struct{}, now time.Time) int {
	today := dayOf(now)
	n := 0
	for i := 0; i < streakHorizon; i++ {
		if _, ok := active[today.Add(-time.Duration(i)*day)]; !ok {
			break
		}
		n++
	}
	return n
}

func walkSeries(walks []domain.WalkSession) []WalkPoint {
	n := min(len(walks), seriesCap)
	out := make([]WalkPoint, n)
	for i := 0; i < n; i++ {
		w := walks[i]
		out[n-1-i] = WalkPoint{
			Date:  w.Date.UTC().Format(dateLayout),
			Km:    round1(w.DistanceKm),
			Steps: w.Steps,
		}
	}
	return out
}

func circuitSeries(circuits []domain.CircuitSession) []CircuitPoint {
	n := min(len(circuits), seriesCap)
	out := make([]CircuitPoint, n)
	for i := 0; i < n; i++ {
		c := circuits[i]
		var v float64
		for _, l := range c.Exercises {
			v += resolveLog(l).volume()
		}
		out[n-1-i] = CircuitPoint{
			Date:        c.Date.UTC().Format(dateLayout),
			VolumeKg:    round1(v),
			DurationMin: c.DurationMinutes,
		}
	}
	return out
}

func dailySeries(walks []domain.WalkSession, circuits []domain.CircuitSession, now time.Time) []DailyPoint {
	first := dayOf(now).Add(-(dailyDays - 1) * day)
	out := make([]DailyPoint, dailyDays)
	for i := range out {
		out[i].Date = first.Add(time.Duration(i) * day).Format(dateLayout)
	}

	var circuitMinutes [dailyDays]float64
	index := func(t time.Time) (int, bool) {
		i := int(dayOf(t).Sub(first) / day)
		return i, i >= 0 && i < dailyDays
	}
	for _, w := range walks {
		if i, ok := index(w.Date); ok {
			out[i].Km += w.DistanceKm
			out[i].Steps += w.Steps
			out[i].Minutes += w.DurationMinutes()
		}
	}
	for _, c := range circuits {
		if i, ok := index(c.Date); ok {
			out[i].Circuits++
			out[i].Minutes += float64(c.DurationMinutes)
			circuitMinutes[i] += float64(c.DurationMinutes)
		}
	}
	for i := range out {
		out[i].Calories = calories(out[i].Km, circuitMinutes[i])
		out[i].Km = round1(out[i].Km)
		out[i].Minutes = round1(out[i].Minutes)
	}
	return out
}

func sortedWalks(in []domain.WalkSession) []domain.WalkSession {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b domain.WalkSession) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

func sortedCircuits(in []domain.CircuitSession) []domain.CircuitSession {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b domain.CircuitSession) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

func dayOf(t time.Time) time.Time {
	return t.UTC().Truncate(day)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
