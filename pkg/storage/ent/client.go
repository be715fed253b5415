// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/studyforgeco/studyforge/pkg/storage/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/graderesult"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/studyguide"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GradeResult is the client for interacting with the GradeResult builders.
	GradeResult *GradeResultClient
	// StudyGuide is the client for interacting with the StudyGuide builders.
	StudyGuide *StudyGuideClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GradeResult = NewGradeResultClient(c.config)
	c.StudyGuide = NewStudyGuideClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		GradeResult: NewGradeResultClient(cfg),
		StudyGuide:  NewStudyGuideClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		GradeResult: NewGradeResultClient(cfg),
		StudyGuide:  NewStudyGuideClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GradeResult.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.GradeResult.Use(hooks...)
	c.StudyGuide.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GradeResult.Intercept(interceptors...)
	c.StudyGuide.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GradeResultMutation:
		return c.GradeResult.mutate(ctx, m)
	case *StudyGuideMutation:
		return c.StudyGuide.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GradeResultClient is a client for the GradeResult schema.
type GradeResultClient struct {
	config
}

// NewGradeResultClient returns a client for the GradeResult from the given config.
func NewGradeResultClient(c config) *GradeResultClient {
	return &GradeResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graderesult.Hooks(f(g(h())))`.
func (c *GradeResultClient) Use(hooks ...Hook) {
	c.hooks.GradeResult = append(c.hooks.GradeResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graderesult.Intercept(f(g(h())))`.
func (c *GradeResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradeResult = append(c.inters.GradeResult, interceptors...)
}

// Create returns a builder for creating a GradeResult entity.
func (c *GradeResultClient) Create() *GradeResultCreate {
	mutation := newGradeResultMutation(c.config, OpCreate)
	return &GradeResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradeResult entities.
func (c *GradeResultClient) CreateBulk(builders ...*GradeResultCreate) *GradeResultCreateBulk {
	return &GradeResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradeResultClient) MapCreateBulk(slice any, setFunc func(*GradeResultCreate, int)) *GradeResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradeResultCreateBulk{err: fmt.Errorf("calling to GradeResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradeResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradeResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradeResult.
func (c *GradeResultClient) Update() *GradeResultUpdate {
	mutation := newGradeResultMutation(c.config, OpUpdate)
	return &GradeResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradeResultClient) UpdateOne(_m *GradeResult) *GradeResultUpdateOne {
	mutation := newGradeResultMutation(c.config, OpUpdateOne, withGradeResult(_m))
	return &GradeResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradeResultClient) UpdateOneID(id string) *GradeResultUpdateOne {
	mutation := newGradeResultMutation(c.config, OpUpdateOne, withGradeResultID(id))
	return &GradeResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradeResult.
func (c *GradeResultClient) Delete() *GradeResultDelete {
	mutation := newGradeResultMutation(c.config, OpDelete)
	return &GradeResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradeResultClient) DeleteOne(_m *GradeResult) *GradeResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradeResultClient) DeleteOneID(id string) *GradeResultDeleteOne {
	builder := c.Delete().Where(graderesult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradeResultDeleteOne{builder}
}

// Query returns a query builder for GradeResult.
func (c *GradeResultClient) Query() *GradeResultQuery {
	return &GradeResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradeResult},
		inters: c.Interceptors(),
	}
}

// Get returns a GradeResult entity by its id.
func (c *GradeResultClient) Get(ctx context.Context, id string) (*GradeResult, error) {
	return c.Query().Where(graderesult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradeResultClient) GetX(ctx context.Context, id string) *GradeResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GradeResultClient) Hooks() []Hook {
	return c.hooks.GradeResult
}

// Interceptors returns the client interceptors.
func (c *GradeResultClient) Interceptors() []Interceptor {
	return c.inters.GradeResult
}

func (c *GradeResultClient) mutate(ctx context.Context, m *GradeResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradeResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradeResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradeResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradeResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradeResult mutation op: %q", m.Op())
	}
}

// StudyGuideClient is a client for the StudyGuide schema.
type StudyGuideClient struct {
	config
}

// NewStudyGuideClient returns a client for the StudyGuide from the given config.
func NewStudyGuideClient(c config) *StudyGuideClient {
	return &StudyGuideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyguide.Hooks(f(g(h())))`.
func (c *StudyGuideClient) Use(hooks ...Hook) {
	c.hooks.StudyGuide = append(c.hooks.StudyGuide, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyguide.Intercept(f(g(h())))`.
func (c *StudyGuideClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyGuide = append(c.inters.StudyGuide, interceptors...)
}

// Create returns a builder for creating a StudyGuide entity.
func (c *StudyGuideClient) Create() *StudyGuideCreate {
	mutation := newStudyGuideMutation(c.config, OpCreate)
	return &StudyGuideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyGuide entities.
func (c *StudyGuideClient) CreateBulk(builders ...*StudyGuideCreate) *StudyGuideCreateBulk {
	return &StudyGuideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyGuideClient) MapCreateBulk(slice any, setFunc func(*StudyGuideCreate, int)) *StudyGuideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyGuideCreateBulk{err: fmt.Errorf("calling to StudyGuideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyGuideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyGuideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyGuide.
func (c *StudyGuideClient) Update() *StudyGuideUpdate {
	mutation := newStudyGuideMutation(c.config, OpUpdate)
	return &StudyGuideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyGuideClient) UpdateOne(_m *StudyGuide) *StudyGuideUpdateOne {
	mutation := newStudyGuideMutation(c.config, OpUpdateOne, withStudyGuide(_m))
	return &StudyGuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyGuideClient) UpdateOneID(id string) *StudyGuideUpdateOne {
	mutation := newStudyGuideMutation(c.config, OpUpdateOne, withStudyGuideID(id))
	return &StudyGuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyGuide.
func (c *StudyGuideClient) Delete() *StudyGuideDelete {
	mutation := newStudyGuideMutation(c.config, OpDelete)
	return &StudyGuideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyGuideClient) DeleteOne(_m *StudyGuide) *StudyGuideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyGuideClient) DeleteOneID(id string) *StudyGuideDeleteOne {
	builder := c.Delete().Where(studyguide.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyGuideDeleteOne{builder}
}

// Query returns a query builder for StudyGuide.
func (c *StudyGuideClient) Query() *StudyGuideQuery {
	return &StudyGuideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyGuide},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyGuide entity by its id.
func (c *StudyGuideClient) Get(ctx context.Context, id string) (*StudyGuide, error) {
	return c.Query().Where(studyguide.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyGuideClient) GetX(ctx context.Context, id string) *StudyGuide {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudyGuideClient) Hooks() []Hook {
	return c.hooks.StudyGuide
}

// Interceptors returns the client interceptors.
func (c *StudyGuideClient) Interceptors() []Interceptor {
	return c.inters.StudyGuide
}

func (c *StudyGuideClient) mutate(ctx context.Context, m *StudyGuideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyGuideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyGuideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyGuideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyGuideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudyGuide mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GradeResult, StudyGuide []ent.Hook
	}
	inters struct {
		GradeResult, StudyGuide []ent.Interceptor
	}
)
