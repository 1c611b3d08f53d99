package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-directory-api/internal/application/ports"
	domain "user-directory-api/internal/domain/user"
	userDB "user-directory-api/internal/infrastructure/db/postgres/user"
	"user-directory-api/internal/infrastructure/mq"
	"user-directory-api/internal/interface/api/rest/dto/user"
)

// UserService owns the directory semantics: live-row uniqueness
// checks, id assignment and audit timestamps. All timestamps come
// from the injected clock so they share one time zone.
type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	now            func() time.Time
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	now func() time.Time,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
		now:            now,
	}
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	taken, err := us.userRepository.FetchUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, userDB.ErrEmailAlreadyExists
	}

	u.ID = uuid.New()
	u.CreatedAt = us.now()

	// the users_email_live_key index backstops the check above under
	// concurrent writers; a violation surfaces as the same sentinel
	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      us.now(),
			Method:  http.MethodPost,
			UserID:  uRet.ID.String(),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	existing, err := us.userRepository.FetchUserByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	// keeping your own email is not a conflict
	taken, err := us.userRepository.FetchUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if taken != nil && taken.ID != u.ID {
		return nil, userDB.ErrEmailAlreadyExists
	}

	now := us.now()
	u.UpdatedAt = &now

	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      now,
			Method:  http.MethodPut,
			UserID:  uRet.ID.String(),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	uRet, err := us.userRepository.SoftDeleteUser(ctx, id, us.now())
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, nil
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      us.now(),
		Method:  http.MethodDelete,
		UserID:  uRet.ID.String(),
		Payload: user.ToResponseUser(*uRet),
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return uRet, nil
}
