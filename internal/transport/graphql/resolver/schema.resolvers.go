package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.49

import (
	"context"

	"github.com/google/uuid"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/internal/service/language"
	"github.com/hallfrida/ordasafn-backend/internal/service/user"
	"github.com/hallfrida/ordasafn-backend/internal/service/word"
	"github.com/hallfrida/ordasafn-backend/internal/transport/graphql/generated"
	"github.com/hallfrida/ordasafn-backend/internal/transport/graphql/model"
)

// Owner is the resolver for the owner field.
func (r *languageResolver) Owner(ctx context.Context, obj *domain.Language) (*domain.User, error) {
	return r.language.Owner(ctx, obj)
}

// Authors is the resolver for the authors field.
func (r *languageResolver) Authors(ctx context.Context, obj *domain.Language) ([]*domain.User, error) {
	users, err := r.language.Authors(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(users), nil
}

// Publishers is the resolver for the publishers field.
func (r *languageResolver) Publishers(ctx context.Context, obj *domain.Language) ([]*domain.User, error) {
	users, err := r.language.Publishers(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(users), nil
}

// TargetLanguage is the resolver for the targetLanguage field.
func (r *languageResolver) TargetLanguage(ctx context.Context, obj *domain.Language) ([]*domain.Language, error) {
	langs, err := r.language.TargetLanguages(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(langs), nil
}

// Followers is the resolver for the followers field.
func (r *languageResolver) Followers(ctx context.Context, obj *domain.Language) ([]*domain.User, error) {
	users, err := r.language.Followers(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(users), nil
}

// WordCount is the resolver for the wordCount field.
func (r *languageResolver) WordCount(ctx context.Context, obj *domain.Language) (int, error) {
	count, err := r.language.WordCount(ctx, obj.ID)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// NewLanguage is the resolver for the newLanguage field.
func (r *mutationResolver) NewLanguage(ctx context.Context, input model.NewLanguageInput) (*domain.Language, error) {
	return r.language.Create(ctx, language.CreateInput{
		Name:        input.Name,
		Native:      input.Native,
		Release:     input.Release,
		Genre:       input.Genre,
		Abstract:    input.Abstract,
		Description: input.Description,
		Rights:      input.Rights,
		License:     input.License,
	})
}

// DeleteLanguage is the resolver for the deleteLanguage field.
func (r *mutationResolver) DeleteLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	return r.language.Delete(ctx, id)
}

// UserFollowLanguage is the resolver for the userFollowLanguage field.
func (r *mutationResolver) UserFollowLanguage(ctx context.Context, language uuid.UUID) (*domain.Language, error) {
	return r.language.Follow(ctx, language)
}

// UserUnfollowLanguage is the resolver for the userUnfollowLanguage field.
func (r *mutationResolver) UserUnfollowLanguage(ctx context.Context, language uuid.UUID) (*domain.Language, error) {
	return r.language.Unfollow(ctx, language)
}

// NewWord is the resolver for the newWord field.
func (r *mutationResolver) NewWord(ctx context.Context, input model.NewWordInput) (*domain.Word, error) {
	return r.word.Create(ctx, word.CreateInput{
		Norm:         input.Norm,
		Native:       input.Native,
		Lemma:        input.Lemma,
		Language:     input.Language,
		PartOfSpeech: input.PartOfSpeech,
		Audio:        input.Audio,
		Video:        input.Video,
		Image:        input.Image,
		Description:  input.Description,
		Etymology:    input.Etymology,
		Usage:        input.Usage,
		Morphology:   input.Morphology,
	})
}

// DeleteWord is the resolver for the deleteWord field.
func (r *mutationResolver) DeleteWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return r.word.Delete(ctx, id)
}

// DbOnlyNewUser is the resolver for the dbOnlyNewUser field.
func (r *mutationResolver) DbOnlyNewUser(ctx context.Context, id string, username string, adminKey string) (*domain.User, error) {
	return r.user.CreateAdmin(ctx, id, username, adminKey)
}

// DbOnlyDeleteUser is the resolver for the dbOnlyDeleteUser field.
func (r *mutationResolver) DbOnlyDeleteUser(ctx context.Context, id string, adminKey string) (*domain.User, error) {
	return r.user.DeleteAdmin(ctx, id, adminKey)
}

// APIVersion is the resolver for the apiVersion field.
func (r *queryResolver) APIVersion(ctx context.Context) (string, error) {
	return r.user.APIVersion(ctx), nil
}

// AllLanguages is the resolver for the allLanguages field.
func (r *queryResolver) AllLanguages(ctx context.Context) ([]*domain.Language, error) {
	langs, err := r.language.All(ctx)
	if err != nil {
		return nil, err
	}
	return refs(langs), nil
}

// Language is the resolver for the language field.
func (r *queryResolver) Language(ctx context.Context, name string, owner string) (*domain.Language, error) {
	return r.language.Get(ctx, name, owner)
}

// FindLanguage is the resolver for the findLanguage field.
func (r *queryResolver) FindLanguage(ctx context.Context, query string) ([]*domain.Language, error) {
	langs, err := r.language.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	return refs(langs), nil
}

// User is the resolver for the user field.
func (r *queryResolver) User(ctx context.Context, id string) (*domain.User, error) {
	return r.user.Get(ctx, id)
}

// FindUser is the resolver for the findUser field.
func (r *queryResolver) FindUser(ctx context.Context, query string) ([]*domain.User, error) {
	users, err := r.user.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	return refs(users), nil
}

// AllUsers is the resolver for the allUsers field.
func (r *queryResolver) AllUsers(ctx context.Context, adminKey string) ([]*domain.User, error) {
	users, err := r.user.All(ctx, adminKey)
	if err != nil {
		return nil, err
	}
	return refs(users), nil
}

// Word is the resolver for the word field.
func (r *queryResolver) Word(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return r.word.Get(ctx, id)
}

// FindWord is the resolver for the findWord field.
func (r *queryResolver) FindWord(ctx context.Context, language uuid.UUID, query string) ([]*domain.Word, error) {
	words, err := r.word.Find(ctx, language, query)
	if err != nil {
		return nil, err
	}
	return refs(words), nil
}

// Words is the resolver for the words field.
func (r *queryResolver) Words(ctx context.Context, language uuid.UUID, word string) ([]*domain.Word, error) {
	words, err := r.word.ByNorm(ctx, language, word)
	if err != nil {
		return nil, err
	}
	return refs(words), nil
}

// Following is the resolver for the following field.
func (r *userResolver) Following(ctx context.Context, obj *domain.User) ([]*domain.User, error) {
	users, err := r.user.Following(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(users), nil
}

// Followers is the resolver for the followers field.
func (r *userResolver) Followers(ctx context.Context, obj *domain.User) ([]*domain.User, error) {
	users, err := r.user.Followers(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(users), nil
}

// FollowedLanguages is the resolver for the followedLanguages field.
func (r *userResolver) FollowedLanguages(ctx context.Context, obj *domain.User) ([]*domain.Language, error) {
	langs, err := r.user.FollowedLanguages(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(langs), nil
}

// Learning is the resolver for the learning field.
func (r *userResolver) Learning(ctx context.Context, obj *domain.User) ([]*user.LearningEntry, error) {
	entries, err := r.user.Learning(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(entries), nil
}

// Lemma is the resolver for the lemma field.
func (r *wordResolver) Lemma(ctx context.Context, obj *domain.Word) (*domain.Word, error) {
	return r.word.Lemma(ctx, obj)
}

// Language is the resolver for the language field.
func (r *wordResolver) Language(ctx context.Context, obj *domain.Word) (*domain.Language, error) {
	return r.word.Language(ctx, obj)
}

// Definitions is the resolver for the definitions field.
func (r *wordResolver) Definitions(ctx context.Context, obj *domain.Word) ([]*domain.Word, error) {
	words, err := r.word.Definitions(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(words), nil
}

// Related is the resolver for the related field.
func (r *wordResolver) Related(ctx context.Context, obj *domain.Word) ([]*domain.Word, error) {
	words, err := r.word.Related(ctx, obj.ID)
	if err != nil {
		return nil, err
	}
	return refs(words), nil
}

// Language returns generated.LanguageResolver implementation.
func (r *Resolver) Language() generated.LanguageResolver { return &languageResolver{r} }

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// User returns generated.UserResolver implementation.
func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

// Word returns generated.WordResolver implementation.
func (r *Resolver) Word() generated.WordResolver { return &wordResolver{r} }

type languageResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
type wordResolver struct{ *Resolver }
