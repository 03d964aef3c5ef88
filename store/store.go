package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"services-marketplace-server/database"
	"services-marketplace-server/models"
)

// Store groups one Repo per table plus the lookups that walk a foreign key
// from parent to children.
type Store struct {
	db *gorm.DB

	Users                 Repo[models.User]
	Logins                Repo[models.UserLogin]
	Workers               Repo[models.Worker]
	Petitioners           Repo[models.Petitioner]
	Services              Repo[models.Service]
	PetitionerServices    Repo[models.PetitionerService]
	EvaluationsPetitioner Repo[models.EvaluationPetitioner]
	EvaluationsWorker     Repo[models.EvaluationWorker]
	Requests              Repo[models.Request]
	WorkerRequests        Repo[models.WorkerRequest]
	PetitionerReviews     Repo[models.PetitionerReview]
	WorkerReviews         Repo[models.WorkerReview]
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:                    db,
		Users:                 NewRepo[models.User](db),
		Logins:                NewRepo[models.UserLogin](db),
		Workers:               NewRepo[models.Worker](db),
		Petitioners:           NewRepo[models.Petitioner](db),
		Services:              NewRepo[models.Service](db),
		PetitionerServices:    NewRepo[models.PetitionerService](db),
		EvaluationsPetitioner: NewRepo[models.EvaluationPetitioner](db),
		EvaluationsWorker:     NewRepo[models.EvaluationWorker](db),
		Requests:              NewRepo[models.Request](db),
		WorkerRequests:        NewRepo[models.WorkerRequest](db),
		PetitionerReviews:     NewRepo[models.PetitionerReview](db),
		WorkerReviews:         NewRepo[models.WorkerReview](db),
	}
}

// Transaction runs fn against a Store bound to one database transaction.
// Returning an error from fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
	return database.Translate(err)
}

func (s *Store) LoginsByUser(ctx context.Context, userID uint) ([]models.UserLogin, error) {
	return s.Logins.FindBy(ctx, "id_user", userID)
}

func (s *Store) LoginByMain(ctx context.Context, main string) (*models.UserLogin, error) {
	return s.Logins.FirstBy(ctx, "main", main)
}

func (s *Store) WorkerByUser(ctx context.Context, userID uint) (*models.Worker, error) {
	return s.Workers.FirstBy(ctx, "id_user", userID)
}

func (s *Store) PetitionerByUser(ctx context.Context, userID uint) (*models.Petitioner, error) {
	return s.Petitioners.FirstBy(ctx, "id_user", userID)
}

func (s *Store) ServicesByWorker(ctx context.Context, workerID uint) ([]models.Service, error) {
	return s.Services.FindBy(ctx, "id_worker", workerID)
}

func (s *Store) PetitionerServicesByService(ctx context.Context, serviceID uint) ([]models.PetitionerService, error) {
	return s.PetitionerServices.FindBy(ctx, "id_services", serviceID)
}

func (s *Store) PetitionerServicesByPetitioner(ctx context.Context, petitionerID uint) ([]models.PetitionerService, error) {
	return s.PetitionerServices.FindBy(ctx, "id_petitioner", petitionerID)
}

func (s *Store) RequestsByPetitioner(ctx context.Context, petitionerID uint) ([]models.Request, error) {
	return s.Requests.FindBy(ctx, "id_petitioner", petitionerID)
}

func (s *Store) WorkerRequestsByRequest(ctx context.Context, requestID uint) ([]models.WorkerRequest, error) {
	return s.WorkerRequests.FindBy(ctx, "id_request", requestID)
}

func (s *Store) WorkerRequestsByWorker(ctx context.Context, workerID uint) ([]models.WorkerRequest, error) {
	return s.WorkerRequests.FindBy(ctx, "id_worker", workerID)
}

// EvaluationsFor returns both evaluations of a petitioner-service row. A side
// that has not been evaluated yet is nil; a missing row is ErrNotFound.
func (s *Store) EvaluationsFor(ctx context.Context, petitionerServiceID uint) (*models.Evaluations, error) {
	if _, err := s.PetitionerServices.Get(ctx, petitionerServiceID); err != nil {
		return nil, err
	}
	out := &models.Evaluations{}
	ep, err := s.EvaluationsPetitioner.FirstBy(ctx, "id_petitioner_services", petitionerServiceID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}
	out.Petitioner = ep
	ew, err := s.EvaluationsWorker.FirstBy(ctx, "id_petitioner_services", petitionerServiceID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}
	out.Worker = ew
	return out, nil
}

// ReviewsFor is EvaluationsFor for the request side.
func (s *Store) ReviewsFor(ctx context.Context, workerRequestID uint) (*models.Reviews, error) {
	if _, err := s.WorkerRequests.Get(ctx, workerRequestID); err != nil {
		return nil, err
	}
	out := &models.Reviews{}
	pr, err := s.PetitionerReviews.FirstBy(ctx, "id_worker_request", workerRequestID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}
	out.Petitioner = pr
	wr, err := s.WorkerReviews.FirstBy(ctx, "id_worker_request", workerRequestID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}
	out.Worker = wr
	return out, nil
}
