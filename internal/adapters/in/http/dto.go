package http

import (
	"time"

	"withus/internal/core/application/usecases/queries"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/model/review"
	"withus/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type createOrderRequest struct {
	ItemID          uuid.UUID  `json:"itemId"`
	ServiceType     string     `json:"serviceType"`
	Quantity        int        `json:"quantity"`
	DeliveryAddress string     `json:"deliveryAddress"`
	ScheduledTime   *time.Time `json:"scheduledTime"`
	MobileNumber    string     `json:"mobileNumber"`
}

type updateOrderStatusRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
}

type createReviewRequest struct {
	ItemID  uuid.UUID `json:"itemId"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type itemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageUrl"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

type itemReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type itemDetailResponse struct {
	itemResponse
	AverageRating float64              `json:"averageRating"`
	ReviewCount   int                  `json:"reviewCount"`
	Reviews       []itemReviewResponse `json:"reviews"`
}

type orderResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	UserName           string     `json:"userName,omitempty"`
	ItemID             uuid.UUID  `json:"itemId"`
	ItemName           string     `json:"itemName,omitempty"`
	ItemImageURL       string     `json:"itemImageUrl,omitempty"`
	ServiceType        string     `json:"serviceType"`
	Status             string     `json:"status"`
	Quantity           int        `json:"quantity"`
	TotalPrice         float64    `json:"totalPrice"`
	DeliveryAddress    string     `json:"deliveryAddress,omitempty"`
	ScheduledTime      *time.Time `json:"scheduledTime,omitempty"`
	MobileNumber       string     `json:"mobileNumber,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type reviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	ItemID    uuid.UUID `json:"itemId"`
	ItemName  string    `json:"itemName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:    u.ID().Bytes(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

func toItemResponse(i queries.GetItemsQueryResponse) itemResponse {
	return itemResponse{
		ID:            i.ID.Bytes(),
		Name:          i.Name,
		Description:   i.Description,
		ImageURL:      i.ImageURL,
		Price:         i.Price,
		Category:      i.Category,
		StockQuantity: i.StockQuantity,
		CreatedAt:     i.CreatedAt,
	}
}

func toItemDetailResponse(i queries.GetItemQueryResponse) itemDetailResponse {
	reviews := make([]itemReviewResponse, len(i.Reviews))
	for idx, r := range i.Reviews {
		reviews[idx] = itemReviewResponse{
			ID:        r.ID.Bytes(),
			UserID:    r.UserID.Bytes(),
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	return itemDetailResponse{
		itemResponse: toItemResponse(queries.GetItemsQueryResponse{
			ID:            i.ID,
			Name:          i.Name,
			Description:   i.Description,
			ImageURL:      i.ImageURL,
			Price:         i.Price,
			Category:      i.Category,
			StockQuantity: i.StockQuantity,
			CreatedAt:     i.CreatedAt,
		}),
		AverageRating: i.AverageRating,
		ReviewCount:   i.ReviewCount,
		Reviews:       reviews,
	}
}

func toOrderDetailsResponse(o queries.OrderDetails) orderResponse {
	return orderResponse{
		ID:                 o.ID.Bytes(),
		UserID:             o.UserID.Bytes(),
		UserName:           o.UserName,
		ItemID:             o.ItemID.Bytes(),
		ItemName:           o.ItemName,
		ItemImageURL:       o.ItemImageURL,
		ServiceType:        o.ServiceType.String(),
		Status:             o.Status.String(),
		Quantity:           o.Quantity,
		TotalPrice:         o.TotalPrice,
		DeliveryAddress:    o.DeliveryAddress,
		ScheduledTime:      o.ScheduledTime,
		MobileNumber:       o.MobileNumber,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
	}
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:                 o.ID().Bytes(),
		UserID:             o.UserID().Bytes(),
		ItemID:             o.ItemID().Bytes(),
		ServiceType:        o.ServiceType().String(),
		Status:             o.Status().String(),
		Quantity:           o.Quantity(),
		TotalPrice:         o.TotalPrice(),
		DeliveryAddress:    o.DeliveryAddress(),
		ScheduledTime:      o.ScheduledTime(),
		MobileNumber:       o.MobileNumber(),
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
	}
}

func toReviewDetailsResponse(r queries.ReviewDetails) reviewResponse {
	return reviewResponse{
		ID:        r.ID.Bytes(),
		UserID:    r.UserID.Bytes(),
		UserName:  r.UserName,
		ItemID:    r.ItemID.Bytes(),
		ItemName:  r.ItemName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func toReviewResponse(r *review.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID().Bytes(),
		UserID:    r.UserID().Bytes(),
		ItemID:    r.ItemID().Bytes(),
		Rating:    r.Rating(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt(),
	}
}
