package service

import (
	"context"
	"testing"

	"coaching_marketplace/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCourseCreate() model.CreateCourseRequest {
	return model.CreateCourseRequest{
		UserID:          "coach-1",
		SkillID:         "skill-1",
		Name:            "morning yoga",
		Description:     "a gentle start to the day",
		StartAt:         "2026-09-01 09:00:00",
		EndAt:           "2026-09-01 10:00:00",
		MaxParticipants: 12.0,
		MeetingURL:      "https://meet.example.com/yoga",
	}
}

func validCourseUpdate() model.UpdateCourseRequest {
	return model.UpdateCourseRequest{
		SkillID:         "skill-2",
		Name:            "evening yoga",
		Description:     "wind down after work",
		StartAt:         "2026-09-01 19:00:00",
		EndAt:           "2026-09-01 20:00:00",
		MaxParticipants: 8.0,
		MeetingURL:      "https://meet.example.com/yoga-pm",
	}
}

func newCourseMocks() (*mockCourseRepo, *mockUserRepo, *mockSkillRepo, CourseService) {
	courseRepo := new(mockCourseRepo)
	userRepo := new(mockUserRepo)
	skillRepo := new(mockSkillRepo)
	return courseRepo, userRepo, skillRepo, NewCourseService(courseRepo, userRepo, skillRepo)
}

func TestCourseService_Create_NonHTTPSMeetingURL(t *testing.T) {
	courseRepo, userRepo, _, svc := newCourseMocks()

	req := validCourseCreate()
	req.MeetingURL = "http://x.com" // everything else valid
	course, err := svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidFields)
	assert.Nil(t, course)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCourseService_Create_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.CreateCourseRequest)
	}{
		{"missing user_id", func(r *model.CreateCourseRequest) { r.UserID = nil }},
		{"missing skill_id", func(r *model.CreateCourseRequest) { r.SkillID = nil }},
		{"blank name", func(r *model.CreateCourseRequest) { r.Name = "  " }},
		{"missing start_at", func(r *model.CreateCourseRequest) { r.StartAt = nil }},
		{"max_participants not a number", func(r *model.CreateCourseRequest) { r.MaxParticipants = "12" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			courseRepo, userRepo, _, svc := newCourseMocks()

			req := validCourseCreate()
			tc.mutate(&req)
			course, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidFields)
			assert.Nil(t, course)
			userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCourseService_Create_OwnerChecks(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		courseRepo, userRepo, _, svc := newCourseMocks()
		userRepo.On("FindByID", mock.Anything, "coach-1").Return(nil, nil)

		course, err := svc.Create(context.Background(), validCourseCreate())

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, course)
		courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("user is not a coach", func(t *testing.T) {
		courseRepo, userRepo, skillRepo, svc := newCourseMocks()
		userRepo.On("FindByID", mock.Anything, "coach-1").
			Return(&model.User{ID: "coach-1", Role: model.RoleUser}, nil)

		course, err := svc.Create(context.Background(), validCourseCreate())

		assert.ErrorIs(t, err, ErrNotACoach)
		assert.Nil(t, course)
		skillRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("skill not found", func(t *testing.T) {
		courseRepo, userRepo, skillRepo, svc := newCourseMocks()
		userRepo.On("FindByID", mock.Anything, "coach-1").
			Return(&model.User{ID: "coach-1", Role: model.RoleCoach}, nil)
		skillRepo.On("FindByID", mock.Anything, "skill-1").Return(nil, nil)

		course, err := svc.Create(context.Background(), validCourseCreate())

		assert.ErrorIs(t, err, ErrSkillNotFound)
		assert.Nil(t, course)
		courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCourseService_Create_Success(t *testing.T) {
	courseRepo, userRepo, skillRepo, svc := newCourseMocks()
	userRepo.On("FindByID", mock.Anything, "coach-1").
		Return(&model.User{ID: "coach-1", Role: model.RoleCoach}, nil)
	skillRepo.On("FindByID", mock.Anything, "skill-1").
		Return(&model.Skill{ID: "skill-1", Name: "yoga"}, nil)
	courseRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)

	course, err := svc.Create(context.Background(), validCourseCreate())

	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "coach-1", course.UserID)
	assert.Equal(t, "skill-1", course.SkillID)
	assert.Equal(t, 12, course.MaxParticipants)
	assert.Equal(t, "2026-09-01 09:00:00", course.StartAt)
	courseRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCourseService_Update_NotFound(t *testing.T) {
	courseRepo, _, _, svc := newCourseMocks()
	courseRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	course, err := svc.Update(context.Background(), "ghost", validCourseUpdate())

	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.Nil(t, course)
	courseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCourseService_Update_InvalidFields(t *testing.T) {
	courseRepo, _, _, svc := newCourseMocks()

	req := validCourseUpdate()
	req.MeetingURL = "http://meet.example.com" // not https
	course, err := svc.Update(context.Background(), "course-1", req)

	assert.ErrorIs(t, err, ErrInvalidFields)
	assert.Nil(t, course)
	courseRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCourseService_Update_LostUpdate(t *testing.T) {
	courseRepo, _, _, svc := newCourseMocks()
	courseRepo.On("FindByID", mock.Anything, "course-1").
		Return(&model.Course{ID: "course-1", UserID: "coach-1"}, nil)
	courseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Course")).Return(int64(0), nil)

	course, err := svc.Update(context.Background(), "course-1", validCourseUpdate())

	assert.ErrorIs(t, err, ErrCourseUpdateFailed)
	assert.Nil(t, course)
}

func TestCourseService_Update_Success(t *testing.T) {
	courseRepo, _, _, svc := newCourseMocks()
	existing := &model.Course{ID: "course-1", UserID: "coach-1", SkillID: "skill-1", Name: "morning yoga"}
	patched := &model.Course{ID: "course-1", UserID: "coach-1", SkillID: "skill-2", Name: "evening yoga",
		Description: "wind down after work", StartAt: "2026-09-01 19:00:00", EndAt: "2026-09-01 20:00:00",
		MaxParticipants: 8, MeetingURL: "https://meet.example.com/yoga-pm"}

	courseRepo.On("FindByID", mock.Anything, "course-1").Return(existing, nil).Once()
	courseRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Course")).Return(int64(1), nil)
	courseRepo.On("FindByID", mock.Anything, "course-1").Return(patched, nil).Once()

	course, err := svc.Update(context.Background(), "course-1", validCourseUpdate())

	require.NoError(t, err)
	// Returned row reflects the patch, owner untouched
	assert.Equal(t, "skill-2", course.SkillID)
	assert.Equal(t, "evening yoga", course.Name)
	assert.Equal(t, 8, course.MaxParticipants)
	assert.Equal(t, "coach-1", course.UserID)
}
