package services

import (
	"testing"
	"time"

	"headless-cms/access"
	"headless-cms/i18n"
	"headless-cms/models"
	"headless-cms/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePostRepo struct {
	posts  map[uint]*models.Post
	nextID uint

	// slugs claimed outside the posts map, used to simulate a concurrent
	// writer landing between the uniqueness pre-check and the insert
	duplicateOnce bool
	updateErr     error

	publishedOnlyCalls []bool
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uint]*models.Post{}}
}

func (f *fakePostRepo) Create(post *models.Post) error {
	if f.duplicateOnce {
		f.duplicateOnce = false
		f.nextID++
		claimed := *post
		claimed.ID = f.nextID
		f.posts[claimed.ID] = &claimed
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range f.posts {
		if existing.Slug == post.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	post.ID = f.nextID
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostRepo) GetByID(id uint, publishedOnly bool) (*models.Post, error) {
	f.publishedOnlyCalls = append(f.publishedOnlyCalls, publishedOnly)
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if publishedOnly && post.Status != models.StatusPublished {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) GetBySlug(slug string, publishedOnly bool) (*models.Post, error) {
	f.publishedOnlyCalls = append(f.publishedOnlyCalls, publishedOnly)
	for _, post := range f.posts {
		if post.Slug == slug {
			if publishedOnly && post.Status != models.StatusPublished {
				return nil, gorm.ErrRecordNotFound
			}
			copied := *post
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePostRepo) GetList(params models.PostListParams, publishedOnly bool) ([]models.Post, int64, error) {
	f.publishedOnlyCalls = append(f.publishedOnlyCalls, publishedOnly)
	var out []models.Post
	for _, post := range f.posts {
		if publishedOnly && post.Status != models.StatusPublished {
			continue
		}
		out = append(out, *post)
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	for _, post := range f.posts {
		if post.Slug == slug && post.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePostRepo) Update(post *models.Post) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostRepo) Delete(id uint) error {
	delete(f.posts, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
	updateErr  error
}

func newFakeCategoryRepo(categories ...*models.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: map[uint]*models.Category{}}
	for _, category := range categories {
		repo.categories[category.ID] = category
		if category.ID > repo.nextID {
			repo.nextID = category.ID
		}
	}
	return repo
}

func (f *fakeCategoryRepo) Create(category *models.Category) error {
	if category.ID == 0 {
		f.nextID++
		category.ID = f.nextID
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) GetBySlug(slug string) (*models.Category, error) {
	for _, category := range f.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	var out []models.Category
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (f *fakeCategoryRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	for _, category := range f.categories {
		if category.Slug == slug && category.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Update(category *models.Category) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(id uint) error {
	delete(f.categories, id)
	return nil
}

func adminIdentity() *access.Identity {
	return &access.Identity{UserID: 1, Roles: models.RoleList{models.RoleAdmin}}
}

func editorIdentity() *access.Identity {
	return &access.Identity{UserID: 2, Roles: models.RoleList{models.RoleEditor}}
}

func richText(text string) *models.RichText {
	return &models.RichText{Root: models.RichTextNode{Children: []models.RichTextNode{
		{Type: "paragraph", Children: []models.RichTextNode{{Text: text}}},
	}}}
}

func newPostServiceForTest(postRepo *fakePostRepo) PostService {
	categoryRepo := newFakeCategoryRepo(&models.Category{ID: 1, Title: "News", Slug: "news"})
	return NewPostService(postRepo, categoryRepo, validators.New(i18n.LocaleES))
}

func TestCreatePostRequiresAdmin(t *testing.T) {
	svc := newPostServiceForTest(newFakePostRepo())

	req := models.CreatePostRequest{Title: "Hello World", CategoryID: 1, Content: richText("body")}

	_, err := svc.CreatePost(req, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreatePost(req, editorIdentity())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreatePostGeneratesSlugAndExcerpt(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)

	req := models.CreatePostRequest{
		Title:      "¡Hola, Mundo!",
		CategoryID: 1,
		Content:    richText("Primer párrafo del artículo."),
	}
	post, err := svc.CreatePost(req, adminIdentity())
	require.NoError(t, err)

	assert.Equal(t, "hola-mundo", post.Slug)
	assert.Equal(t, "Primer párrafo del artículo.", post.Excerpt)
	assert.Equal(t, models.StatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, uint(1), post.AuthorID)
}

func TestCreatePostResolvesSlugCollision(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)

	first, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Hola Mundo", CategoryID: 1, Content: richText("uno"),
	}, adminIdentity())
	require.NoError(t, err)
	assert.Equal(t, "hola-mundo", first.Slug)

	second, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Hola Mundo", CategoryID: 1, Content: richText("dos"),
	}, adminIdentity())
	require.NoError(t, err)
	assert.Equal(t, "hola-mundo-1", second.Slug)
}

func TestCreatePostRetriesOnConcurrentSlugClaim(t *testing.T) {
	repo := newFakePostRepo()
	repo.duplicateOnce = true
	svc := newPostServiceForTest(repo)

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Racy Title", CategoryID: 1, Content: richText("body"),
	}, adminIdentity())
	require.NoError(t, err)

	// The first insert lost the slug to a concurrent writer, so the retry
	// lands on the next suffix.
	assert.Equal(t, "racy-title-1", post.Slug)
}

func TestCreatePostStampsPublishedDate(t *testing.T) {
	svc := newPostServiceForTest(newFakePostRepo())

	post, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Published Now", CategoryID: 1, Content: richText("body"),
		Status: models.StatusPublished,
	}, adminIdentity())
	require.NoError(t, err)

	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now(), *post.PublishedAt, time.Second)
}

func TestCreatePostValidation(t *testing.T) {
	svc := newPostServiceForTest(newFakePostRepo())
	ident := adminIdentity()

	_, err := svc.CreatePost(models.CreatePostRequest{
		Title: "abcd", CategoryID: 1, Content: richText("body"),
	}, ident)
	require.Error(t, err)
	assert.Equal(t, "El título debe tener al menos 5 caracteres", err.Error())

	_, err = svc.CreatePost(models.CreatePostRequest{
		Title: "Valid Title", CategoryID: 1,
	}, ident)
	require.Error(t, err)
	assert.Equal(t, "El contenido es requerido", err.Error())

	_, err = svc.CreatePost(models.CreatePostRequest{
		Title: "Valid Title", CategoryID: 1, Content: richText("body"),
		EmbeddedVideos: []string{"https://dailymotion.com/video/x1"},
	}, ident)
	require.Error(t, err)
	assert.Equal(t, "URL debe ser de YouTube o Vimeo.", err.Error())

	_, err = svc.CreatePost(models.CreatePostRequest{
		Title: "Valid Title", CategoryID: 1, Content: richText("body"),
		EmbeddedVideos: []string{
			"https://youtu.be/a", "https://youtu.be/b", "https://youtu.be/c",
			"https://youtu.be/d", "https://youtu.be/e", "https://youtu.be/f",
		},
	}, ident)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many embedded videos")

	_, err = svc.CreatePost(models.CreatePostRequest{
		Title: "Valid Title", CategoryID: 99, Content: richText("body"),
	}, ident)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdatePostKeepsAuthor(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)

	created, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Original Title", CategoryID: 1, Content: richText("body"),
	}, adminIdentity())
	require.NoError(t, err)
	require.Equal(t, uint(1), created.AuthorID)

	otherAdmin := &access.Identity{UserID: 9, Roles: models.RoleList{models.RoleAdmin}}
	updated, err := svc.UpdatePost(created.ID, models.UpdatePostRequest{
		Title: "Renamed Title", Slug: created.Slug, Content: richText("new body"),
	}, otherAdmin)
	require.NoError(t, err)

	assert.Equal(t, uint(1), updated.AuthorID)
	assert.Equal(t, "Renamed Title", updated.Title)
}

func TestUpdatePostSlugConflict(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)
	ident := adminIdentity()

	_, err := svc.CreatePost(models.CreatePostRequest{
		Title: "First Post", CategoryID: 1, Content: richText("uno"),
	}, ident)
	require.NoError(t, err)

	second, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Second Post", CategoryID: 1, Content: richText("dos"),
	}, ident)
	require.NoError(t, err)

	_, err = svc.UpdatePost(second.ID, models.UpdatePostRequest{
		Title: "Second Post", Slug: "first-post", Content: richText("dos"),
	}, ident)
	require.Error(t, err)
	assert.Equal(t, "Este slug ya está en uso.", err.Error())
}

func TestUpdatePostConcurrentSlugClaim(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)
	ident := adminIdentity()

	created, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Carrera de Slugs", CategoryID: 1, Content: richText("uno"),
	}, ident)
	require.NoError(t, err)

	// The pre-check passes but a concurrent writer claims the slug before
	// the save lands.
	repo.updateErr = gorm.ErrDuplicatedKey
	_, err = svc.UpdatePost(created.ID, models.UpdatePostRequest{
		Title: "Carrera de Slugs", Slug: "otro-slug", Content: richText("uno"),
	}, ident)
	require.Error(t, err)
	assert.Equal(t, "Este slug ya está en uso.", err.Error())
}

func TestUpdatePostKeepsExistingPublishedDate(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)
	ident := adminIdentity()

	created, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Stays Published", CategoryID: 1, Content: richText("body"),
		Status: models.StatusPublished,
	}, ident)
	require.NoError(t, err)
	originalStamp := *created.PublishedAt

	updated, err := svc.UpdatePost(created.ID, models.UpdatePostRequest{
		Title: "Stays Published", Slug: created.Slug, Content: richText("edited"),
		Status: models.StatusPublished,
	}, ident)
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, originalStamp, *updated.PublishedAt)

	// Unpublishing clears the stamp.
	updated, err = svc.UpdatePost(created.ID, models.UpdatePostRequest{
		Title: "Stays Published", Slug: created.Slug, Content: richText("edited"),
		Status: models.StatusDraft,
	}, ident)
	require.NoError(t, err)
	assert.Nil(t, updated.PublishedAt)
}

func TestReadsRestrictNonAdminsToPublished(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)

	draft, err := svc.CreatePost(models.CreatePostRequest{
		Title: "Draft Post", CategoryID: 1, Content: richText("body"),
	}, adminIdentity())
	require.NoError(t, err)

	_, err = svc.GetPost(draft.ID, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.GetPost(draft.ID, editorIdentity())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := svc.GetPost(draft.ID, adminIdentity())
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)

	repo.publishedOnlyCalls = nil
	_, _ = svc.GetPostBySlug(draft.Slug, nil)
	_, _, _ = svc.GetPosts(models.PostListParams{Page: 1, Limit: 10}, adminIdentity())
	require.Len(t, repo.publishedOnlyCalls, 2)
	assert.True(t, repo.publishedOnlyCalls[0])
	assert.False(t, repo.publishedOnlyCalls[1])
}

func TestDeletePost(t *testing.T) {
	repo := newFakePostRepo()
	svc := newPostServiceForTest(repo)

	created, err := svc.CreatePost(models.CreatePostRequest{
		Title: "To Delete", CategoryID: 1, Content: richText("body"),
	}, adminIdentity())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePost(created.ID, editorIdentity()), ErrForbidden)

	require.NoError(t, svc.DeletePost(created.ID, adminIdentity()))
	_, err = svc.GetPost(created.ID, adminIdentity())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
