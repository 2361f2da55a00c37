package handlers_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"matchmate_backend/internal/models"
	"matchmate_backend/internal/repositories"
)

// In-memory repository fakes backing the router tests. They mirror the store
// semantics the real implementations get from MongoDB: idempotent updates,
// not-found sentinels, join behavior on the read-side views.

type fakeStore struct {
	mu        sync.Mutex
	users     map[string]*models.User // keyed by email
	biodata   map[primitive.ObjectID]*models.Biodata
	favorites map[primitive.ObjectID]*models.Favorite
	requests  map[primitive.ObjectID]*models.ContactRequest
	reviews   []*models.Review
	counter   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[string]*models.User),
		biodata:   make(map[primitive.ObjectID]*models.Biodata),
		favorites: make(map[primitive.ObjectID]*models.Favorite),
		requests:  make(map[primitive.ObjectID]*models.ContactRequest),
	}
}

// --- UserRepository ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user.ID = primitive.NewObjectID()
	clone := *user
	r.store.users[user.Email] = &clone
	return user.ID, nil
}

func (r *fakeUserRepo) SetMembershipPending(_ context.Context, email string, bioID int, reqName string) (int64, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[email]
	if !ok {
		return 0, 0, nil
	}
	user.Type = models.MembershipPending
	user.BioID = bioID
	user.ReqName = reqName
	return 1, 1, nil
}

func (r *fakeUserRepo) MarkRegistered(_ context.Context, email string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[email]; ok {
		user.Status = models.UserStatusRegistered
	}
	return nil
}

func (r *fakeUserRepo) ApprovePremium(_ context.Context, id primitive.ObjectID, at time.Time) (int64, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.ID == id {
			modified := int64(0)
			if user.Type != models.MembershipPremium {
				modified = 1
			}
			user.Type = models.MembershipPremium
			user.MakeDate = &at
			return 1, modified, nil
		}
	}
	return 0, 0, nil
}

func (r *fakeUserRepo) MakeAdmin(_ context.Context, id primitive.ObjectID) (int64, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.ID == id {
			user.Role = models.UserRoleAdmin
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (r *fakeUserRepo) FindPendingRequests(_ context.Context) ([]models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := []models.User{}
	for _, user := range r.store.users {
		if user.Type == models.MembershipPending {
			result = append(result, *user)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := []models.User{}
	for _, user := range r.store.users {
		result = append(result, *user)
	}
	return result, nil
}

func (r *fakeUserRepo) CountPremium(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, user := range r.store.users {
		if user.Type == models.MembershipPremium {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) PremiumListing(_ context.Context, _ int) ([]bson.M, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := []bson.M{}
	for _, user := range r.store.users {
		if user.Type != models.MembershipPremium {
			continue
		}
		if len(result) == repositories.PremiumListingLimit {
			break
		}
		result = append(result, bson.M{"email": user.Email, "type": string(user.Type)})
	}
	return result, nil
}

// --- BiodataRepository ---

type fakeBiodataRepo struct{ store *fakeStore }

func (r *fakeBiodataRepo) NextBioID(_ context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.counter++
	return r.store.counter, nil
}

func (r *fakeBiodataRepo) Create(_ context.Context, bio *models.Biodata) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	bio.ID = primitive.NewObjectID()
	clone := *bio
	r.store.biodata[bio.ID] = &clone
	return bio.ID, nil
}

func (r *fakeBiodataRepo) UpdateByEmail(_ context.Context, email string, bio *models.Biodata) (int64, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.biodata {
		if existing.Email == email {
			existing.BiodataType = bio.BiodataType
			existing.Info = bio.Info
			existing.ExpectedHeight = bio.ExpectedHeight
			existing.ExpectedWeight = bio.ExpectedWeight
			existing.PartnerAge = bio.PartnerAge
			existing.Image = bio.Image
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (r *fakeBiodataRepo) FindByEmail(_ context.Context, email string) (*models.Biodata, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, bio := range r.store.biodata {
		if bio.Email == email {
			clone := *bio
			return &clone, nil
		}
	}
	return nil, repositories.ErrBiodataNotFound
}

func (r *fakeBiodataRepo) FindByObjectID(_ context.Context, id primitive.ObjectID) (*models.Biodata, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if bio, ok := r.store.biodata[id]; ok {
		clone := *bio
		return &clone, nil
	}
	return nil, repositories.ErrBiodataNotFound
}

func (r *fakeBiodataRepo) FindByBioID(_ context.Context, bioID int) (*models.Biodata, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, bio := range r.store.biodata {
		if bio.BioID == bioID {
			clone := *bio
			return &clone, nil
		}
	}
	return nil, repositories.ErrBiodataNotFound
}

func (r *fakeBiodataRepo) FindByType(_ context.Context, biodataType string) ([]models.Biodata, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := []models.Biodata{}
	for _, bio := range r.store.biodata {
		if bio.BiodataType == biodataType && len(result) < repositories.SameBioLimit {
			result = append(result, *bio)
		}
	}
	return result, nil
}

func (r *fakeBiodataRepo) CountAll(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.biodata)), nil
}

func (r *fakeBiodataRepo) CountByType(_ context.Context, biodataType string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, bio := range r.store.biodata {
		if bio.BiodataType == biodataType {
			count++
		}
	}
	return count, nil
}

// --- FavoriteRepository ---

type fakeFavoriteRepo struct{ store *fakeStore }

func (r *fakeFavoriteRepo) FindPair(_ context.Context, email, serverID string) (*models.Favorite, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, fav := range r.store.favorites {
		if fav.Email == email && fav.ServerID == serverID {
			clone := *fav
			return &clone, nil
		}
	}
	return nil, repositories.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) Insert(_ context.Context, fav *models.Favorite) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	fav.ID = primitive.NewObjectID()
	clone := *fav
	r.store.favorites[fav.ID] = &clone
	return fav.ID, nil
}

func (r *fakeFavoriteRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Favorite, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if fav, ok := r.store.favorites[id]; ok {
		clone := *fav
		return &clone, nil
	}
	return nil, repositories.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.favorites[id]; !ok {
		return 0, nil
	}
	delete(r.store.favorites, id)
	return 1, nil
}

func (r *fakeFavoriteRepo) ListView(_ context.Context, email string) ([]models.FavoriteView, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	views := []models.FavoriteView{}
	for _, fav := range r.store.favorites {
		if fav.Email != email {
			continue
		}
		view := models.FavoriteView{ID: fav.ID}
		// Same contract as the $convert/$lookup pipeline: an unparseable
		// serverId leaves the joined fields empty.
		if targetID, err := primitive.ObjectIDFromHex(fav.ServerID); err == nil {
			if bio, ok := r.store.biodata[targetID]; ok {
				view.Name = bio.Info.Name
				view.BioDataID = bio.BioID
				view.PermanentAddress = bio.Info.PermanentDivision
				view.Occupation = bio.Info.Occupation
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// --- ContactRequestRepository ---

type fakeContactRepo struct{ store *fakeStore }

func (r *fakeContactRepo) Insert(_ context.Context, req *models.ContactRequest) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req.Status = models.RequestStatusPending
	req.ID = primitive.NewObjectID()
	clone := *req
	r.store.requests[req.ID] = &clone
	return req.ID, nil
}

func (r *fakeContactRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.ContactRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if req, ok := r.store.requests[id]; ok {
		clone := *req
		return &clone, nil
	}
	return nil, repositories.ErrRequestNotFound
}

func (r *fakeContactRepo) FindByApplicant(_ context.Context, email string) ([]models.ContactRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := []models.ContactRequest{}
	for _, req := range r.store.requests {
		if req.ApplicantEmail == email {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.requests[id]; !ok {
		return 0, nil
	}
	delete(r.store.requests, id)
	return 1, nil
}

func (r *fakeContactRepo) FindAll(_ context.Context) ([]models.ContactRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	result := []models.ContactRequest{}
	for _, req := range r.store.requests {
		result = append(result, *req)
	}
	return result, nil
}

func (r *fakeContactRepo) Approve(_ context.Context, id primitive.ObjectID) (int64, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.requests[id]
	if !ok {
		return 0, 0, nil
	}
	modified := int64(0)
	if req.Status != models.RequestStatusApproved {
		modified = 1
	}
	req.Status = models.RequestStatusApproved
	return 1, modified, nil
}

func (r *fakeContactRepo) CountPending(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, req := range r.store.requests {
		if req.Status == models.RequestStatusPending {
			count++
		}
	}
	return count, nil
}

func (r *fakeContactRepo) SumAmount(_ context.Context) (float64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var total float64
	for _, req := range r.store.requests {
		total += req.Amount
	}
	return total, nil
}

// --- ReviewRepository ---

type fakeReviewRepo struct{ store *fakeStore }

func (r *fakeReviewRepo) Insert(_ context.Context, review *models.Review) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	review.ID = primitive.NewObjectID()
	r.store.reviews = append(r.store.reviews, review)
	return review.ID, nil
}

// --- payments.IntentClient ---

type fakeIntentClient struct {
	secret string
	err    error
}

func (c *fakeIntentClient) CreateIntent(_ context.Context, _ float64) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.secret, nil
}
