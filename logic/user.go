package logic

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

// UserLogic handles registration, login and wallet queries.
type UserLogic struct {
	userDAO *dao.UserDAO
	balance *BalanceLogic
	secret  []byte
	expHour int
	log     *zap.Logger
}

func NewUserLogic(userDAO *dao.UserDAO, balance *BalanceLogic, secret string, expHour int, log *zap.Logger) *UserLogic {
	return &UserLogic{
		userDAO: userDAO,
		balance: balance,
		secret:  []byte(secret),
		expHour: expHour,
		log:     log,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (l *UserLogic) Register(username, email, password, role string) (*models.User, error) {
	exists, err := l.userDAO.ExistsByEmailOrUsername(email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Validation("user with this email or username already exists")
	}

	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleCreator {
		return nil, apperrors.Validation("invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     role,
		Status:   models.StatusActive,
	}
	if err := l.userDAO.CreateUser(user); err != nil {
		return nil, err
	}

	l.log.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role))

	return user, nil
}

// Login verifies credentials and issues a signed JWT.
func (l *UserLogic) Login(email, password string) (*models.User, string, time.Time, error) {
	user, err := l.userDAO.GetUserByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}
	if user.Status != models.StatusActive {
		return nil, "", time.Time{}, apperrors.ErrForbidden
	}

	expireAt := time.Now().Add(time.Duration(l.expHour) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": expireAt.Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString(l.secret)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	return user, signed, expireAt, nil
}

// GetUser retrieves a user by id.
func (l *UserLogic) GetUser(id uuid.UUID) (*models.User, error) {
	return l.userDAO.GetUserByID(id)
}

// Wallet returns the user's balance together with the full ledger history.
func (l *UserLogic) Wallet(id uuid.UUID) (*models.User, []models.LedgerEntry, error) {
	user, err := l.userDAO.GetUserByID(id)
	if err != nil {
		return nil, nil, err
	}
	history, err := l.balance.History(id)
	if err != nil {
		return nil, nil, err
	}
	return user, history, nil
}

// GrantTokens tops up a user's balance. Admin only; the grant lands as a tip
// ledger entry.
func (l *UserLogic) GrantTokens(callerRole string, userID uuid.UUID, amount int64) (int64, error) {
	if callerRole != models.RoleAdmin {
		return 0, apperrors.ErrForbidden
	}
	if amount <= 0 {
		return 0, apperrors.Validation("grant amount must be positive")
	}
	return l.balance.Adjust(userID, amount, models.LedgerTip)
}
