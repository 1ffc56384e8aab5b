package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/framework"
	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/modules/scoring"
	"github.com/clearboard/clearboard-backend/internal/modules/trend"
	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/repos"
	"github.com/clearboard/clearboard-backend/internal/types"
)

const (
	rosterCacheTTL    = 5 * time.Minute
	dashboardCacheTTL = 5 * time.Minute

	// peerWeakCutoff and peerStrongCutoff frame a peer match: the target
	// struggles below the first, the peer must average at least the second.
	peerWeakCutoff   = 60.0
	peerStrongCutoff = 70.0
	peerWindowSize   = 10
	maxPeerMatches   = 3

	rosterFanOut = 8
)

type RosterElementScore struct {
	Score *float64 `json:"score"`
	Color *string  `json:"color"`
}

type RosterRow struct {
	TeacherID          uuid.UUID                     `json:"teacher_id"`
	TeacherName        string                        `json:"teacher_name"`
	Subject            string                        `json:"subject"`
	GradeLevel         string                        `json:"grade_level"`
	Department         string                        `json:"department,omitempty"`
	ElementScores      map[string]RosterElementScore `json:"element_scores"`
	OverallScore       *float64                      `json:"overall_score"`
	OverallColor       *string                       `json:"overall_color"`
	AssessmentCount    int                           `json:"assessment_count"`
	LastAssessmentDate *time.Time                    `json:"last_assessment_date"`
	TopProblems        []RosterProblem               `json:"top_problems"`
}

type RosterProblem struct {
	ElementID   string  `json:"element_id"`
	ElementName string  `json:"element_name"`
	Score       float64 `json:"score"`
}

type RosterView struct {
	SelectedElements []string    `json:"selected_elements"`
	Roster           []RosterRow `json:"roster"`
}

type DashboardElementSummary struct {
	ElementID          string   `json:"element_id"`
	ElementName        string   `json:"element_name"`
	AverageScore       float64  `json:"average_score"`
	Color              string   `json:"color"`
	AssessmentCount    int      `json:"assessment_count"`
	RecentObservations []string `json:"recent_observations"`
}

type DashboardTrendPoint struct {
	Date          time.Time          `json:"date"`
	OverallScore  float64            `json:"overall_score"`
	ElementScores map[string]float64 `json:"element_scores"`
}

type DashboardView struct {
	Teacher          *types.Teacher            `json:"teacher"`
	ElementSummary   []DashboardElementSummary `json:"element_summary"`
	TrendData        []DashboardTrendPoint     `json:"trend_data"`
	TotalAssessments int                       `json:"total_assessments"`
	DateRangeStart   *time.Time                `json:"date_range_start"`
	DateRangeEnd     *time.Time                `json:"date_range_end"`
}

type TrendView struct {
	PeriodType  string                  `json:"period_type"`
	Points      []*types.TrendPoint     `json:"points"`
	Regressions []trend.RegressionAlert `json:"regressions"`
	Progress    []trend.ProgressReport  `json:"progress"`
}

type PeerStrength struct {
	ElementID   string  `json:"element_id"`
	ElementName string  `json:"element_name"`
	Score       float64 `json:"score"`
}

type PeerRecommendation struct {
	PeerID     uuid.UUID      `json:"peer_id"`
	PeerName   string         `json:"peer_name"`
	Subject    string         `json:"subject"`
	GradeLevel string         `json:"grade_level"`
	Department string         `json:"department,omitempty"`
	Strengths  []PeerStrength `json:"strengths"`
	MatchScore float64        `json:"match_score"`
	Reason     string         `json:"reason"`
}

type PerformanceService interface {
	GetRoster(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*RosterView, error)
	GetDashboard(ctx context.Context, userID, teacherID uuid.UUID, from, to *time.Time) (*DashboardView, error)
	RecomputeTrends(ctx context.Context, userID, teacherID uuid.UUID, periodType trend.PeriodType) (*TrendView, error)
	GetTrends(ctx context.Context, userID, teacherID uuid.UUID, periodType trend.PeriodType) (*TrendView, error)
	GetPeerRecommendations(ctx context.Context, userID, teacherID uuid.UUID) ([]PeerRecommendation, error)
}

type performanceService struct {
	db             *gorm.DB
	log            *logger.Logger
	cfg            EngineConfig
	teacherRepo    repos.TeacherRepo
	assessmentRepo repos.AssessmentRepo
	trendPointRepo repos.TrendPointRepo
	scheduleRepo   repos.ScheduleRepo
	selectionRepo  repos.FrameworkSelectionRepo
	cache          CacheService
}

func NewPerformanceService(
	db *gorm.DB,
	log *logger.Logger,
	cfg EngineConfig,
	teacherRepo repos.TeacherRepo,
	assessmentRepo repos.AssessmentRepo,
	trendPointRepo repos.TrendPointRepo,
	scheduleRepo repos.ScheduleRepo,
	selectionRepo repos.FrameworkSelectionRepo,
	cache CacheService,
) PerformanceService {
	return &performanceService{
		db:             db,
		log:            log.With("service", "PerformanceService"),
		cfg:            cfg,
		teacherRepo:    teacherRepo,
		assessmentRepo: assessmentRepo,
		trendPointRepo: trendPointRepo,
		scheduleRepo:   scheduleRepo,
		selectionRepo:  selectionRepo,
		cache:          cache,
	}
}

func (s *performanceService) GetRoster(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*RosterView, error) {
	cacheable := from == nil && to == nil
	if cacheable {
		var cached RosterView
		if s.cache.GetJSON(ctx, rosterCacheKey(userID), &cached) {
			return &cached, nil
		}
	}

	elements, err := s.selectedElements(ctx, userID)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teacherRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]RosterRow, len(teachers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rosterFanOut)
	for i, teacher := range teachers {
		i, teacher := i, teacher
		g.Go(func() error {
			row, err := s.rosterRow(gctx, userID, teacher, elements, from, to)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &RosterView{SelectedElements: elements, Roster: rows}
	if cacheable {
		s.cache.SetJSON(ctx, rosterCacheKey(userID), view, rosterCacheTTL)
	}
	return view, nil
}

func (s *performanceService) rosterRow(ctx context.Context, userID uuid.UUID, teacher *types.Teacher, elements []string, from, to *time.Time) (RosterRow, error) {
	assessments, err := s.assessmentRepo.ListByTeacher(ctx, nil, userID, teacher.ID, from, to)
	if err != nil {
		return RosterRow{}, err
	}

	row := RosterRow{
		TeacherID:     teacher.ID,
		TeacherName:   teacher.Name,
		Subject:       teacher.Subject,
		GradeLevel:    teacher.GradeLevel,
		Department:    teacher.Department,
		ElementScores: make(map[string]RosterElementScore, len(elements)),
	}
	row.AssessmentCount = len(assessments)
	if len(assessments) > 0 {
		last := assessments[len(assessments)-1].AnalyzedAt
		row.LastAssessmentDate = &last
	}

	history := elementHistory(assessments)
	var problems []scoring.ScoredElement
	var names = map[string]string{}
	var overallSum float64
	var overallCount int
	for _, elementID := range elements {
		h, seen := history[elementID]
		if !seen || len(h.scores) == 0 {
			row.ElementScores[elementID] = RosterElementScore{}
			continue
		}
		avg := meanOf(h.scores)
		color := string(scoring.Classify(avg, s.cfg.Thresholds))
		score := avg
		row.ElementScores[elementID] = RosterElementScore{Score: &score, Color: &color}
		overallSum += avg
		overallCount++
		names[elementID] = h.name

		elem := scoring.ScoredElement{
			ElementID:        elementID,
			Score:            h.scores[len(h.scores)-1],
			Weight:           1,
			ObservationCount: len(h.scores),
			AIConfidence:     h.lastConfidence,
		}
		if len(h.scores) > 1 {
			prev := h.scores[len(h.scores)-2]
			elem.PreviousScore = &prev
		}
		problems = append(problems, elem)
	}
	if overallCount > 0 {
		overall := overallSum / float64(overallCount)
		color := string(scoring.Classify(overall, s.cfg.Thresholds))
		row.OverallScore = &overall
		row.OverallColor = &color
	}
	for _, p := range scoring.TopProblems(problems, 0) {
		row.TopProblems = append(row.TopProblems, RosterProblem{
			ElementID:   p.ElementID,
			ElementName: names[p.ElementID],
			Score:       p.Score,
		})
	}
	return row, nil
}

func (s *performanceService) GetDashboard(ctx context.Context, userID, teacherID uuid.UUID, from, to *time.Time) (*DashboardView, error) {
	cacheable := from == nil && to == nil
	if cacheable {
		var cached DashboardView
		if s.cache.GetJSON(ctx, dashboardCacheKey(userID, teacherID), &cached) {
			return &cached, nil
		}
	}

	teacher, err := s.teacherRepo.GetByID(ctx, nil, userID, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	assessments, err := s.assessmentRepo.ListByTeacher(ctx, nil, userID, teacherID, from, to)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{Teacher: teacher, TotalAssessments: len(assessments)}
	if len(assessments) > 0 {
		start := assessments[0].AnalyzedAt
		end := assessments[len(assessments)-1].AnalyzedAt
		view.DateRangeStart = &start
		view.DateRangeEnd = &end
	}

	for _, a := range assessments {
		point := DashboardTrendPoint{
			Date:          a.AnalyzedAt,
			OverallScore:  a.OverallScore,
			ElementScores: map[string]float64{},
		}
		for _, es := range decodeElementScores(a, s.log) {
			point.ElementScores[es.ElementID] = es.Score
		}
		view.TrendData = append(view.TrendData, point)
	}

	history := elementHistory(assessments)
	ids := make([]string, 0, len(history))
	for id := range history {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		h := history[id]
		avg := meanOf(h.scores)
		recent := h.observations
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		view.ElementSummary = append(view.ElementSummary, DashboardElementSummary{
			ElementID:          id,
			ElementName:        h.name,
			AverageScore:       avg,
			Color:              string(scoring.Classify(avg, s.cfg.Thresholds)),
			AssessmentCount:    len(h.scores),
			RecentObservations: recent,
		})
	}

	if cacheable {
		s.cache.SetJSON(ctx, dashboardCacheKey(userID, teacherID), view, dashboardCacheTTL)
	}
	return view, nil
}

func (s *performanceService) RecomputeTrends(ctx context.Context, userID, teacherID uuid.UUID, periodType trend.PeriodType) (*TrendView, error) {
	if _, err := s.teacherRepo.GetByID(ctx, nil, userID, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	assessments, err := s.assessmentRepo.ListByTeacher(ctx, nil, userID, teacherID, nil, nil)
	if err != nil {
		return nil, err
	}

	obs := make([]trend.Observation, 0, len(assessments))
	for _, a := range assessments {
		obs = append(obs, trend.Observation{
			Date:       a.AnalyzedAt,
			Score:      a.OverallScore,
			Confidence: assessmentConfidence(a, s.log),
		})
	}
	buckets := trend.BucketObservations(obs, periodType)
	stats := trend.AnalyzeBuckets(buckets, periodType, trend.AnalyzeConfig{DirectionDeadband: s.cfg.DirectionDeadband})

	schoolAvg, percentile, err := s.peerStanding(ctx, userID, teacherID, stats)
	if err != nil {
		return nil, err
	}

	points := make([]*types.TrendPoint, 0, len(stats))
	for _, st := range stats {
		points = append(points, &types.TrendPoint{
			ID:                uuid.New(),
			UserID:            userID,
			TeacherID:         teacherID,
			PeriodType:        string(periodType),
			PeriodStart:       st.PeriodStart,
			PeriodEnd:         st.PeriodEnd,
			AverageScore:      st.Average,
			ScoreChange:       st.ScoreChange,
			TrendDirection:    string(st.Direction),
			ObservationCount:  st.ObservationCount,
			MinScore:          st.Min,
			MaxScore:          st.Max,
			StdDeviation:      st.StdDeviation,
			ConfidenceAverage: st.ConfidenceAverage,
			SchoolAverage:     schoolAvg,
			PercentileRank:    percentile,
			ComputedAt:        time.Now().UTC(),
		})
	}

	if len(stats) > 0 {
		latest := stats[len(stats)-1]
		missed, err := s.missedObservations(ctx, userID, teacherID)
		if err != nil {
			return nil, err
		}
		risk := trend.PredictRisk(trend.RiskInput{
			Trend:              latest.Direction,
			AverageScore:       latest.Average,
			StdDeviation:       latest.StdDeviation,
			MissedObservations: missed,
		})
		level := string(risk.Level)
		score := risk.Score
		last := points[len(points)-1]
		last.RiskLevel = &level
		last.RiskScore = &score
		if raw, err := json.Marshal(risk.Factors); err == nil {
			last.RiskFactors = datatypes.JSON(raw)
		}

		averages := make([]float64, 0, len(stats))
		for _, st := range stats {
			averages = append(averages, st.Average)
		}
		if _, _, next, ok := trend.ForecastWindow(averages, s.cfg.ForecastWindow); ok {
			last.PredictedScore = &next
		}
	}

	if err := s.trendPointRepo.ReplaceForTeacher(ctx, nil, userID, teacherID, string(periodType), points); err != nil {
		return nil, fmt.Errorf("failed to store trend points: %w", err)
	}
	return &TrendView{
		PeriodType:  string(periodType),
		Points:      points,
		Regressions: trend.DetectRegressions(stats),
		Progress:    trend.DetectProgress(stats),
	}, nil
}

func (s *performanceService) GetTrends(ctx context.Context, userID, teacherID uuid.UUID, periodType trend.PeriodType) (*TrendView, error) {
	points, err := s.trendPointRepo.ListByTeacher(ctx, nil, userID, teacherID, string(periodType))
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		// Nothing stored yet; compute from scratch.
		return s.RecomputeTrends(ctx, userID, teacherID, periodType)
	}
	stats := statsFromPoints(points, periodType)
	return &TrendView{
		PeriodType:  string(periodType),
		Points:      points,
		Regressions: trend.DetectRegressions(stats),
		Progress:    trend.DetectProgress(stats),
	}, nil
}

func (s *performanceService) GetPeerRecommendations(ctx context.Context, userID, teacherID uuid.UUID) ([]PeerRecommendation, error) {
	target, err := s.teacherRepo.GetByID(ctx, nil, userID, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	targetAverages, names, err := s.elementAverages(ctx, userID, teacherID)
	if err != nil {
		return nil, err
	}
	if len(targetAverages) == 0 {
		return []PeerRecommendation{}, nil
	}

	weak := weakAreas(targetAverages)
	teachers, err := s.teacherRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var recs []PeerRecommendation
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rosterFanOut)
	for _, peer := range teachers {
		peer := peer
		if peer.ID == teacherID {
			continue
		}
		g.Go(func() error {
			peerAverages, peerNames, err := s.elementAverages(gctx, userID, peer.ID)
			if err != nil {
				return err
			}
			if len(peerAverages) == 0 {
				return nil
			}
			rec, ok := matchPeer(target, peer, weak, targetAverages, peerAverages, names, peerNames)
			if !ok {
				return nil
			}
			mu.Lock()
			recs = append(recs, rec)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].MatchScore > recs[j].MatchScore })
	if len(recs) > maxPeerMatches {
		recs = recs[:maxPeerMatches]
	}
	if recs == nil {
		recs = []PeerRecommendation{}
	}
	return recs, nil
}

// matchPeer scores one peer against the target's weak areas. A peer
// qualifies when it averages at least the strong cutoff in any weak area.
func matchPeer(target, peer *types.Teacher, weak []string, targetAvg, peerAvg map[string]float64, targetNames, peerNames map[string]string) (PeerRecommendation, bool) {
	var strengths []PeerStrength
	var matchScore float64
	for _, area := range weak {
		avg, ok := peerAvg[area]
		if !ok || avg < peerStrongCutoff {
			continue
		}
		name := targetNames[area]
		if name == "" {
			name = peerNames[area]
		}
		strengths = append(strengths, PeerStrength{ElementID: area, ElementName: name, Score: avg})
		targetScore, ok := targetAvg[area]
		if !ok {
			targetScore = 50
		}
		matchScore += (avg - targetScore) / 100
	}
	if len(strengths) == 0 {
		return PeerRecommendation{}, false
	}
	if len(strengths) > 3 {
		strengths = strengths[:3]
	}
	if len(weak) > 0 {
		matchScore /= float64(len(weak))
	}
	if matchScore > 1 {
		matchScore = 1
	}

	reasonNames := make([]string, 0, 2)
	for _, st := range strengths {
		reasonNames = append(reasonNames, st.ElementName)
		if len(reasonNames) == 2 {
			break
		}
	}
	reason := "Strong in " + strings.Join(reasonNames, ", ")
	if peer.Subject == target.Subject {
		reason += " (same subject area)"
	}
	return PeerRecommendation{
		PeerID:     peer.ID,
		PeerName:   peer.Name,
		Subject:    peer.Subject,
		GradeLevel: peer.GradeLevel,
		Department: peer.Department,
		Strengths:  strengths,
		MatchScore: matchScore,
		Reason:     reason,
	}, true
}

// weakAreas picks every element averaging below the weak cutoff; when
// none qualify it falls back to the three lowest averages.
func weakAreas(averages map[string]float64) []string {
	var weak []string
	for id, avg := range averages {
		if avg < peerWeakCutoff {
			weak = append(weak, id)
		}
	}
	if len(weak) > 0 {
		sort.Strings(weak)
		return weak
	}
	ids := make([]string, 0, len(averages))
	for id := range averages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if averages[ids[i]] != averages[ids[j]] {
			return averages[ids[i]] < averages[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > 3 {
		ids = ids[:3]
	}
	return ids
}

func (s *performanceService) elementAverages(ctx context.Context, userID, teacherID uuid.UUID) (map[string]float64, map[string]string, error) {
	assessments, err := s.assessmentRepo.ListByTeacher(ctx, nil, userID, teacherID, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	if len(assessments) > peerWindowSize {
		assessments = assessments[len(assessments)-peerWindowSize:]
	}
	history := elementHistory(assessments)
	averages := make(map[string]float64, len(history))
	names := make(map[string]string, len(history))
	for id, h := range history {
		averages[id] = meanOf(h.scores)
		names[id] = h.name
	}
	return averages, names, nil
}

// peerStanding computes the school-wide average and this teacher's
// percentile among peers, both over each teacher's mean overall score.
func (s *performanceService) peerStanding(ctx context.Context, userID, teacherID uuid.UUID, stats []trend.Stats) (schoolAvg, percentile float64, err error) {
	teachers, err := s.teacherRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return 0, 0, err
	}
	var all []float64
	var peers []float64
	for _, t := range teachers {
		assessments, err := s.assessmentRepo.ListByTeacher(ctx, nil, userID, t.ID, nil, nil)
		if err != nil {
			return 0, 0, err
		}
		if len(assessments) == 0 {
			continue
		}
		var sum float64
		for _, a := range assessments {
			sum += a.OverallScore
		}
		avg := sum / float64(len(assessments))
		all = append(all, avg)
		if t.ID != teacherID {
			peers = append(peers, avg)
		}
	}
	if len(all) > 0 {
		var sum float64
		for _, v := range all {
			sum += v
		}
		schoolAvg = sum / float64(len(all))
	}
	if len(stats) > 0 {
		percentile = trend.PercentileRank(stats[len(stats)-1].Average, peers)
	}
	return schoolAvg, percentile, nil
}

// missedObservations counts planned sessions whose slot has already
// passed without being completed or cancelled.
func (s *performanceService) missedObservations(ctx context.Context, userID, teacherID uuid.UUID) (int, error) {
	schedules, err := s.scheduleRepo.ListByTeacher(ctx, nil, userID, teacherID)
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	missed := 0
	for _, sc := range schedules {
		if sc.Status == types.ScheduleStatusPlanned && sc.ScheduledFor.Before(now) {
			missed++
		}
	}
	return missed, nil
}

func (s *performanceService) selectedElements(ctx context.Context, userID uuid.UUID) ([]string, error) {
	row, err := s.selectionRepo.GetByUser(ctx, nil, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && len(row.SelectedElements) > 0 {
		var elements []string
		if err := json.Unmarshal(row.SelectedElements, &elements); err == nil && len(elements) > 0 {
			return elements, nil
		}
	}
	fwType := framework.TypeDanielson
	if err == nil && row.FrameworkType != "" {
		fwType = row.FrameworkType
	}
	fw, err := framework.ByType(fwType)
	if err != nil {
		return nil, err
	}
	return fw.ElementIDs(), nil
}

type elementRun struct {
	name           string
	scores         []float64
	observations   []string
	lastConfidence *float64
}

// elementHistory folds assessments (chronological) into per-element
// score series and collected observation notes.
func elementHistory(assessments []*types.Assessment) map[string]*elementRun {
	out := map[string]*elementRun{}
	for _, a := range assessments {
		for _, es := range decodeElementScores(a, nil) {
			run, ok := out[es.ElementID]
			if !ok {
				run = &elementRun{name: es.ElementName}
				out[es.ElementID] = run
			}
			if es.ElementName != "" {
				run.name = es.ElementName
			}
			run.scores = append(run.scores, es.Score)
			run.observations = append(run.observations, es.Observations...)
			run.lastConfidence = es.Confidence
		}
	}
	return out
}

func decodeElementScores(a *types.Assessment, log *logger.Logger) []types.ElementScoreRecord {
	if len(a.ElementScores) == 0 {
		return nil
	}
	var records []types.ElementScoreRecord
	if err := json.Unmarshal(a.ElementScores, &records); err != nil {
		if log != nil {
			log.Warn("Assessment has malformed element scores", "assessment_id", a.ID, "error", err)
		}
		return nil
	}
	return records
}

// assessmentConfidence averages the element-level confidences, when any
// are present.
func assessmentConfidence(a *types.Assessment, log *logger.Logger) *float64 {
	var sum float64
	var n int
	for _, es := range decodeElementScores(a, log) {
		if es.Confidence != nil {
			sum += *es.Confidence
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func statsFromPoints(points []*types.TrendPoint, periodType trend.PeriodType) []trend.Stats {
	stats := make([]trend.Stats, 0, len(points))
	for _, p := range points {
		stats = append(stats, trend.Stats{
			PeriodStart:       p.PeriodStart,
			PeriodEnd:         p.PeriodEnd,
			PeriodType:        periodType,
			Average:           p.AverageScore,
			Min:               p.MinScore,
			Max:               p.MaxScore,
			StdDeviation:      p.StdDeviation,
			ScoreChange:       p.ScoreChange,
			Direction:         trend.Direction(p.TrendDirection),
			ObservationCount:  p.ObservationCount,
			ConfidenceAverage: p.ConfidenceAverage,
		})
	}
	return stats
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
