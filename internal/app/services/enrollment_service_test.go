package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz/campusrecords/internal/app/models"
	"github.com/jdelacruz/campusrecords/internal/app/models/dto"
	"github.com/jdelacruz/campusrecords/internal/pkg/cache"
)

type fakeEnrollmentStore struct {
	enrollments []*models.Enrollment
	listCalls   int
}

func (f *fakeEnrollmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	f.listCalls++
	var result []*models.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
}

func (f *fakeCourseStore) GetByIDs(_ context.Context, ids []int64) (map[int64]*models.Course, error) {
	found := make(map[int64]*models.Course, len(ids))
	for _, id := range ids {
		if course, ok := f.courses[id]; ok {
			found[id] = course
		}
	}
	return found, nil
}

// fakeViewCache is a working in-memory cache; failingViewCache errors on
// every call so fallback behavior can be exercised.
type fakeViewCache struct {
	entries map[int64][]dto.EnrollmentView
	hits    int
	misses  int
}

func newFakeViewCache() *fakeViewCache {
	return &fakeViewCache{entries: make(map[int64][]dto.EnrollmentView)}
}

func (f *fakeViewCache) Get(_ context.Context, studentID int64) ([]dto.EnrollmentView, error) {
	views, ok := f.entries[studentID]
	if !ok {
		f.misses++
		return nil, cache.ErrCacheMiss
	}
	f.hits++
	return views, nil
}

func (f *fakeViewCache) Set(_ context.Context, studentID int64, views []dto.EnrollmentView) error {
	f.entries[studentID] = views
	return nil
}

type failingViewCache struct{}

func (failingViewCache) Get(context.Context, int64) ([]dto.EnrollmentView, error) {
	return nil, errors.New("connection refused")
}

func (failingViewCache) Set(context.Context, int64, []dto.EnrollmentView) error {
	return errors.New("connection refused")
}

func testCourse(id int64, code string) *models.Course {
	return &models.Course{
		ID:         id,
		Code:       code,
		Name:       "Course " + code,
		Professor:  "Prof. " + code,
		Schedule:   "MWF",
		TimeSlot:   "8:00 AM - 9:30 AM",
		Location:   "Rm 204",
		Units:      3,
		CourseType: models.CourseTypeLecture,
	}
}

func testEnrollment(id, studentID, courseID int64) *models.Enrollment {
	return &models.Enrollment{
		ID:         id,
		StudentID:  studentID,
		CourseID:   courseID,
		Section:    "A",
		EnrolledAt: time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
}

func newTestEnrollmentService(enrollments *fakeEnrollmentStore, courses *fakeCourseStore, viewCache EnrollmentCache) EnrollmentService {
	profiles := newFakeProfileStore(testProfile())
	return NewEnrollmentService(enrollments, courses, profiles, viewCache, zerolog.Nop())
}

func TestListEnrollments_Empty(t *testing.T) {
	service := newTestEnrollmentService(&fakeEnrollmentStore{}, &fakeCourseStore{}, nil)

	views, err := service.ListEnrollments(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestListEnrollments_ScopedToStudent(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
		testEnrollment(2, 2, 10),
		testEnrollment(3, 1, 11),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
		11: testCourse(11, "CS302"),
	}}
	service := newTestEnrollmentService(enrollments, courses, nil)

	views, err := service.ListEnrollments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].EnrollmentID)
	assert.Equal(t, int64(3), views[1].EnrollmentID)
}

func TestListEnrollments_JoinsCourseFields(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
	}}
	service := newTestEnrollmentService(enrollments, courses, nil)

	views, err := service.ListEnrollments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "CS301", view.CourseCode)
	assert.Equal(t, "Course CS301", view.CourseName)
	assert.Equal(t, "Prof. CS301", view.Professor)
	assert.Equal(t, 3, view.Units)
	assert.Equal(t, string(models.CourseTypeLecture), view.CourseType)
}

func TestListEnrollments_DropsDanglingCourse(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
		testEnrollment(2, 1, 99), // no such course
		testEnrollment(3, 1, 11),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
		11: testCourse(11, "CS302"),
	}}
	service := newTestEnrollmentService(enrollments, courses, nil)

	views, err := service.ListEnrollments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "CS301", views[0].CourseCode)
	assert.Equal(t, "CS302", views[1].CourseCode)
}

func TestListEnrollments_CacheReadThrough(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
	}}
	viewCache := newFakeViewCache()
	service := newTestEnrollmentService(enrollments, courses, viewCache)

	first, err := service.ListEnrollments(context.Background(), 1)
	require.NoError(t, err)
	second, err := service.ListEnrollments(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, enrollments.listCalls, "second listing must come from the cache")
	assert.Equal(t, 1, viewCache.hits)
	assert.Equal(t, 1, viewCache.misses)
}

func TestListEnrollments_CacheFailureFallsBack(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
	}}
	service := newTestEnrollmentService(enrollments, courses, failingViewCache{})

	views, err := service.ListEnrollments(context.Background(), 1)
	require.NoError(t, err, "cache failure must not fail the listing")
	assert.Len(t, views, 1)
}

func TestGetDashboard(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
		testEnrollment(2, 1, 11),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
		11: testCourse(11, "CS302"),
	}}
	service := newTestEnrollmentService(enrollments, courses, nil)

	dashboard, err := service.GetDashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Juan Dela Cruz", dashboard.FullName)
	assert.Equal(t, "2021-00412", dashboard.StudentID)
	assert.Equal(t, "student", dashboard.Role)
	require.Len(t, dashboard.Courses, 2)
	assert.Equal(t, dto.ColorSchemes[0], dashboard.Courses[0].ColorScheme)
	assert.Equal(t, dto.ColorSchemes[1], dashboard.Courses[1].ColorScheme)
}

func TestGetDashboard_ColorSchemeWrapsAroundPalette(t *testing.T) {
	enrollments := &fakeEnrollmentStore{}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{}}
	total := len(dto.ColorSchemes) + 2
	for i := 0; i < total; i++ {
		id := int64(i + 1)
		courses.courses[id] = testCourse(id, fmt.Sprintf("CS%03d", id))
		enrollments.enrollments = append(enrollments.enrollments, testEnrollment(id, 1, id))
	}
	service := newTestEnrollmentService(enrollments, courses, nil)

	dashboard, err := service.GetDashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, dashboard.Courses, total)

	assert.Equal(t, dto.ColorSchemes[0], dashboard.Courses[len(dto.ColorSchemes)].ColorScheme)
	assert.Equal(t, dto.ColorSchemes[1], dashboard.Courses[len(dto.ColorSchemes)+1].ColorScheme)
}

func TestProjectionsAgreeOnCourseSet(t *testing.T) {
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{
		testEnrollment(1, 1, 10),
		testEnrollment(2, 1, 99), // dangling, dropped everywhere
		testEnrollment(3, 1, 11),
	}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
		11: testCourse(11, "CS302"),
	}}
	service := newTestEnrollmentService(enrollments, courses, nil)
	ctx := context.Background()

	dashboard, err := service.GetDashboard(ctx, 1)
	require.NoError(t, err)
	schedule, err := service.GetSchedule(ctx, 1)
	require.NoError(t, err)
	listing, err := service.GetEnrollmentList(ctx, 1)
	require.NoError(t, err)

	wantCodes := []string{"CS301", "CS302"}
	for i, code := range wantCodes {
		assert.Equal(t, code, dashboard.Courses[i].CourseCode)
		assert.Equal(t, code, schedule[i].CourseCode)
		assert.Equal(t, code, listing[i].CourseCode)
	}
	assert.Len(t, dashboard.Courses, len(wantCodes))
	assert.Len(t, schedule, len(wantCodes))
	assert.Len(t, listing, len(wantCodes))
}

func TestGetEnrollmentList_FormatsDateAndStatus(t *testing.T) {
	enrollment := testEnrollment(1, 1, 10)
	enrollment.EnrolledAt = time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	enrollments := &fakeEnrollmentStore{enrollments: []*models.Enrollment{enrollment}}
	courses := &fakeCourseStore{courses: map[int64]*models.Course{
		10: testCourse(10, "CS301"),
	}}
	service := newTestEnrollmentService(enrollments, courses, nil)

	listing, err := service.GetEnrollmentList(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "Aug 15, 2026", listing[0].EnrolledAt)
	assert.Equal(t, dto.EnrollmentStatusActive, listing[0].Status)
}
