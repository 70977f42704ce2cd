package postgres

import (
	"gorm.io/datatypes"

	"rencontre/internal/domain/entity"
	"rencontre/internal/infra/persistence/model"
)

// Mapper helpers converting between domain entities and persistence models.
// Kept in one place because users preload profiles and profiles preload
// photos, so the repositories share these conversions.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		DisplayName:  data.DisplayName,
		BirthDate:    data.BirthDate,
		Gender:       data.Gender,
		City:         data.City,
		Profile:      toProfileDomain(data.Profile),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		DisplayName:  data.DisplayName,
		BirthDate:    data.BirthDate,
		Gender:       data.Gender,
		City:         data.City,
		Profile:      fromProfileDomain(data.Profile),
	}
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	photos := make([]entity.Photo, 0, len(data.Photos))
	for i := range data.Photos {
		photos = append(photos, *toPhotoDomain(&data.Photos[i]))
	}

	return &entity.Profile{
		ID:         data.ID,
		UserID:     data.UserID,
		Bio:        data.Bio,
		Interests:  data.Interests,
		Intentions: data.Intentions,
		Prompts:    data.Prompts.Data(),
		City:       data.City,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Photos:     photos,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Bio:        data.Bio,
		Interests:  datatypes.NewJSONSlice(data.Interests),
		Intentions: datatypes.NewJSONSlice(data.Intentions),
		Prompts:    datatypes.NewJSONType(data.Prompts),
		City:       data.City,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
	}
}

func toPhotoDomain(data *model.PhotoModel) *entity.Photo {
	if data == nil {
		return nil
	}

	return &entity.Photo{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Path:      data.Path,
		Position:  data.Position,
		IsPrimary: data.IsPrimary,
		CreatedAt: data.CreatedAt,
	}
}

func fromPhotoDomain(data *entity.Photo) *model.PhotoModel {
	if data == nil {
		return nil
	}

	return &model.PhotoModel{
		ID:        data.ID,
		ProfileID: data.ProfileID,
		Path:      data.Path,
		Position:  data.Position,
		IsPrimary: data.IsPrimary,
	}
}

func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		ID:          data.ID,
		FromUserID:  data.FromUserID,
		ToUserID:    data.ToUserID,
		IsSuperLike: data.IsSuperLike,
		CreatedAt:   data.CreatedAt,
	}
}

func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:          data.ID,
		FromUserID:  data.FromUserID,
		ToUserID:    data.ToUserID,
		IsSuperLike: data.IsSuperLike,
	}
}

func toMatchDomain(data *model.MatchModel) *entity.Match {
	if data == nil {
		return nil
	}

	return &entity.Match{
		ID:        data.ID,
		UserAID:   data.UserAID,
		UserBID:   data.UserBID,
		CreatedAt: data.CreatedAt,
	}
}

func fromMatchDomain(data *entity.Match) *model.MatchModel {
	if data == nil {
		return nil
	}

	return &model.MatchModel{
		ID:      data.ID,
		UserAID: data.UserAID,
		UserBID: data.UserBID,
	}
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:        data.ID,
		MatchID:   data.MatchID,
		SenderID:  data.SenderID,
		Content:   data.Content,
		IsSeen:    data.IsSeen,
		CreatedAt: data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:       data.ID,
		MatchID:  data.MatchID,
		SenderID: data.SenderID,
		Content:  data.Content,
		IsSeen:   data.IsSeen,
	}
}
