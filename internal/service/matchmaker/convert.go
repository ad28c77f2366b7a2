package matchmaker

import (
	"github.com/oggyb/matchbot/internal/db"
	pb "github.com/oggyb/matchbot/internal/proto/matchmaker"
	"github.com/oggyb/matchbot/internal/repository"
)

func toProfile(p db.Profile) *pb.Profile {
	return &pb.Profile{
		UserId:     p.ID,
		Username:   p.Username,
		FirstName:  p.FirstName,
		Age:        int32(p.Age),
		Gender:     p.Gender,
		Religion:   p.Religion,
		City:       p.City,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Bio:        p.Bio,
		Language:   p.Language,
		Photos:     p.PhotoRefs(),
		Active:     p.Active,
		Registered: p.Registered,
		Phone:      p.Phone,
	}
}

func toProfiles(ps []db.Profile) []*pb.Profile {
	out := make([]*pb.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProfile(p))
	}
	return out
}

func toLikers(ls []repository.Liker) []*pb.Liker {
	out := make([]*pb.Liker, 0, len(ls))
	for _, l := range ls {
		out = append(out, &pb.Liker{
			Profile:       toProfile(l.Profile),
			UnixTimestamp: uint64(l.LikedAt.UnixMilli()),
		})
	}
	return out
}

func toPayment(p db.Payment) *pb.Payment {
	return &pb.Payment{
		Id:            p.ID,
		UserId:        p.UserID,
		PackageId:     p.PackageName,
		Coins:         p.Coins,
		PriceCents:    p.PriceCents,
		EvidenceRef:   p.EvidenceRef,
		Status:        p.Status,
		Notes:         p.Notes,
		UnixTimestamp: uint64(p.CreatedAt.UnixMilli()),
	}
}

func toChatMessages(ms []db.Message) []*pb.ChatMessage {
	out := make([]*pb.ChatMessage, 0, len(ms))
	for _, m := range ms {
		out = append(out, &pb.ChatMessage{
			Id:            m.ID,
			SenderId:      m.SenderID,
			RecipientId:   m.RecipientID,
			Kind:          m.Kind,
			Text:          m.Content,
			MediaRef:      m.MediaRef,
			UnixTimestamp: uint64(m.CreatedAt.UnixMilli()),
		})
	}
	return out
}

func toUpdate(req *pb.UpdateProfileRequest) repository.ProfileUpdate {
	u := repository.ProfileUpdate{
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Religion:  req.Religion,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Bio:       req.Bio,
		Language:  req.Language,
		Active:    req.Active,
	}
	if req.Age != nil {
		age := int(*req.Age)
		u.Age = &age
	}
	return u
}
