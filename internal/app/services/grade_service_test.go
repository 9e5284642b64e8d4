package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz/campusrecords/internal/app/models"
	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/pkg/apperrors"
)

type fakeGradeStore struct {
	grades    []*models.Grade
	lastQuery []int64
}

func (f *fakeGradeStore) ListByEnrollmentIDs(_ context.Context, enrollmentIDs []int64) ([]*models.Grade, error) {
	f.lastQuery = enrollmentIDs
	wanted := make(map[int64]struct{}, len(enrollmentIDs))
	for _, id := range enrollmentIDs {
		wanted[id] = struct{}{}
	}
	var result []*models.Grade
	for _, g := range f.grades {
		if _, ok := wanted[g.EnrollmentID]; ok {
			result = append(result, g)
		}
	}
	return result, nil
}

func floatPtr(f float64) *float64 { return &f }

func newTestGradeService(enrollments *fakeEnrollmentStore, courses *fakeCourseStore, grades *fakeGradeStore) GradeService {
	enrollmentService := newTestEnrollmentService(enrollments, courses, nil)
	return NewGradeService(enrollmentService, grades, zerolog.Nop())
}

func TestGetGradeReport_EmptyWithoutEnrollments(t *testing.T) {
	service := newTestGradeService(&fakeEnrollmentStore{}, &fakeCourseStore{}, &fakeGradeStore{})

	rows, err := service.GetGradeReport(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGetGradeReport_UngradedEnrollmentIsAllUpcoming(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
	}}
	service := newTestGradeService(enrollments, courses, &fakeGradeStore{})

	rows, err := service.GetGradeReport(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	for _, cell := range []dto.ScoreCell{row.Prelim, row.Midterm, row.Final} {
		assert.Equal(t, dto.ScoreStatusUpcoming, cell.Status)
		assert.Equal(t, dto.ScoreDisplayUpcoming, cell.Display)
		assert.Nil(t, cell.Score)
	}
	assert.Nil(t, row.Remarks)
}

func TestGetGradeReport_PresentScoresRenderOneDecimal(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
	}}
	grades := &fakeGradeStore{grades: []*models.Grade{
		{ID: 1, EnrollmentID: 1, Prelim: floatPtr(88.5), Midterm: floatPtr(90)},
	}}
	service := newTestGradeService(enrollments, courses, grades)

	rows, err := service.GetGradeReport(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "88.5", row.Prelim.Display)
	assert.Equal(t, dto.ScoreStatusSuccess, row.Prelim.Status)
	assert.Equal(t, "90.0", row.Midterm.Display)
	assert.Equal(t, dto.ScoreStatusSuccess, row.Midterm.Status)
	assert.Equal(t, dto.ScoreDisplayUpcoming, row.Final.Display)
	assert.Equal(t, dto.ScoreStatusUpcoming, row.Final.Status)
}

func TestGetGradeReport_BatchesGradeLookup(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
		testEnrollment(2, 1, 11),
		testEnrollment(3, 1, 12),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
		11: testCourse(11, "CS302"),
		12: testCourse(12, "MATH211"),
	}}
	grades := &fakeGradeStore{}
	service := newTestGradeService(enrollments, courses, grades)

	_, err := service.GetGradeReport(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, grades.lastQuery, "all enrollment ids must go out in one query")
}

func TestGetGradeReport_DuplicateGradeIsIntegrityError(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
	}}
	grades := &fakeGradeStore{grades: []*models.Grade{
		{ID: 1, EnrollmentID: 1, Prelim: floatPtr(90)},
		{ID: 2, EnrollmentID: 1, Prelim: floatPtr(75)},
	}}
	service := newTestGradeService(enrollments, courses, grades)

	_, err := service.GetGradeReport(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)
}

func TestGetGradeReport_RowsFollowEnrollmentOrder(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
		testEnrollment(2, 1, 11),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
		11: testCourse(11, "CS302"),
	}}
	remarks := "Keep it up"
	grades := &fakeGradeStore{grades: []*models.Grade{
		{ID: 1, EnrollmentID: 2, Prelim: floatPtr(85), Remarks: &remarks},
	}}
	service := newTestGradeService(enrollments, courses, grades)

	rows, err := service.GetGradeReport(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "CS301", rows[0].CourseCode)
	assert.Equal(t, dto.ScoreDisplayUpcoming, rows[0].Prelim.Display)

	assert.Equal(t, "CS302", rows[1].CourseCode)
	assert.Equal(t, "85.0", rows[1].Prelim.Display)
	require.NotNil(t, rows[1].Remarks)
	assert.Equal(t, "Keep it up", *rows[1].Remarks)
}
