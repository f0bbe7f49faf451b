package services

import (
	"testing"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobStore struct {
	jobs   map[uint]*models.Job
	nextID uint
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[uint]*models.Job{}, nextID: 1}
}

func (f *fakeJobStore) Create(job *models.Job) error {
	job.ID = f.nextID
	f.nextID++
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobStore) FindByID(id uint) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *j
	return &copied, nil
}

func (f *fakeJobStore) Update(job *models.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobStore) Delete(id uint) error {
	if _, ok := f.jobs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobStore) List(p repository.ListParams) ([]models.Job, int64, error) {
	var out []models.Job
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func newAdminService(users *fakeUserStore) (*AdminService, *fakeJobStore) {
	jobs := newFakeJobStore()
	return NewAdminService(users, jobs, nil, nil, testLogger()), jobs
}

func TestAdminCreateUser_RoleRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		callerRole string
		targetRole string
		wantErr    error
	}{
		{"admin creates user", models.RoleAdmin, models.RoleUser, nil},
		{"admin creates admin", models.RoleAdmin, models.RoleAdmin, ErrRoleEscalation},
		{"superadmin creates admin", models.RoleSuperAdmin, models.RoleAdmin, nil},
		{"superadmin creates superadmin", models.RoleSuperAdmin, models.RoleSuperAdmin, ErrRoleEscalation},
		{"default role is user", models.RoleAdmin, "", nil},
		{"unknown role", models.RoleSuperAdmin, "wizard", ErrInvalidRole},
	}

	for i, tt := range tests {
		tt := tt
		email := string(rune('a'+i)) + "@example.com"
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newAdminService(newFakeUserStore())
			user, err := svc.CreateUser(tt.callerRole, "X", email, "hunter22", tt.targetRole)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.targetRole == "" {
				assert.Equal(t, models.RoleUser, user.Role)
			} else {
				assert.Equal(t, tt.targetRole, user.Role)
			}
		})
	}
}

func TestAdminDeleteUser_RejectsSelf(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	require.NoError(t, users.Create(&models.User{Email: "admin@example.com", Role: models.RoleAdmin}))
	svc, _ := newAdminService(users)

	err := svc.DeleteUser(1, 1)
	assert.ErrorIs(t, err, ErrSelfDelete)

	// the account is still there
	_, findErr := users.FindByID(1)
	assert.NoError(t, findErr)
}

func TestAdminDeleteUser_UnknownTarget(t *testing.T) {
	t.Parallel()

	svc, _ := newAdminService(newFakeUserStore())
	err := svc.DeleteUser(1, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdminUpdateUser_RoleChangeNeedsSuperadmin(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	require.NoError(t, users.Create(&models.User{Email: "u@example.com", Role: models.RoleUser}))
	svc, _ := newAdminService(users)

	adminRole := models.RoleAdmin
	_, err := svc.UpdateUser(models.RoleAdmin, 1, nil, nil, &adminRole)
	assert.ErrorIs(t, err, ErrRoleEscalation)

	updated, err := svc.UpdateUser(models.RoleSuperAdmin, 1, nil, nil, &adminRole)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestAdminJobCRUD(t *testing.T) {
	t.Parallel()

	svc, _ := newAdminService(newFakeUserStore())

	job := &models.Job{Title: "Backend Engineer", Company: "TechNova"}
	require.NoError(t, svc.CreateJob(job))
	assert.Equal(t, models.JobStatusActive, job.Status, "status defaults to active")

	closed := models.JobStatusClosed
	updated, err := svc.UpdateJob(job.ID, nil, nil, nil, &closed)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, updated.Status)
	assert.Equal(t, "Backend Engineer", updated.Title)

	_, err = svc.UpdateJob(999, nil, nil, nil, &closed)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, svc.DeleteJob(job.ID))
	assert.ErrorIs(t, svc.DeleteJob(job.ID), repository.ErrNotFound)
}
