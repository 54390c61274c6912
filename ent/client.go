// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ghostworks/ghostd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/approvalrequest"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
	"github.com/ghostworks/ghostd/ent/execution"
	"github.com/ghostworks/ghostd/ent/executionlog"
	"github.com/ghostworks/ghostd/ent/executionstep"
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/ent/ghostversion"
	"github.com/ghostworks/ghostd/ent/orgsettings"
	"github.com/ghostworks/ghostd/ent/secureevent"
	"github.com/ghostworks/ghostd/ent/userfeedback"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalRequest is the client for interacting with the ApprovalRequest builders.
	ApprovalRequest *ApprovalRequestClient
	// AutomationPolicy is the client for interacting with the AutomationPolicy builders.
	AutomationPolicy *AutomationPolicyClient
	// DetectedPattern is the client for interacting with the DetectedPattern builders.
	DetectedPattern *DetectedPatternClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// ExecutionLog is the client for interacting with the ExecutionLog builders.
	ExecutionLog *ExecutionLogClient
	// ExecutionStep is the client for interacting with the ExecutionStep builders.
	ExecutionStep *ExecutionStepClient
	// Ghost is the client for interacting with the Ghost builders.
	Ghost *GhostClient
	// GhostVersion is the client for interacting with the GhostVersion builders.
	GhostVersion *GhostVersionClient
	// OrgSettings is the client for interacting with the OrgSettings builders.
	OrgSettings *OrgSettingsClient
	// SecureEvent is the client for interacting with the SecureEvent builders.
	SecureEvent *SecureEventClient
	// UserFeedback is the client for interacting with the UserFeedback builders.
	UserFeedback *UserFeedbackClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalRequest = NewApprovalRequestClient(c.config)
	c.AutomationPolicy = NewAutomationPolicyClient(c.config)
	c.DetectedPattern = NewDetectedPatternClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.ExecutionLog = NewExecutionLogClient(c.config)
	c.ExecutionStep = NewExecutionStepClient(c.config)
	c.Ghost = NewGhostClient(c.config)
	c.GhostVersion = NewGhostVersionClient(c.config)
	c.OrgSettings = NewOrgSettingsClient(c.config)
	c.SecureEvent = NewSecureEventClient(c.config)
	c.UserFeedback = NewUserFeedbackClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		AutomationPolicy: NewAutomationPolicyClient(cfg),
		DetectedPattern:  NewDetectedPatternClient(cfg),
		Execution:        NewExecutionClient(cfg),
		ExecutionLog:     NewExecutionLogClient(cfg),
		ExecutionStep:    NewExecutionStepClient(cfg),
		Ghost:            NewGhostClient(cfg),
		GhostVersion:     NewGhostVersionClient(cfg),
		OrgSettings:      NewOrgSettingsClient(cfg),
		SecureEvent:      NewSecureEventClient(cfg),
		UserFeedback:     NewUserFeedbackClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ApprovalRequest:  NewApprovalRequestClient(cfg),
		AutomationPolicy: NewAutomationPolicyClient(cfg),
		DetectedPattern:  NewDetectedPatternClient(cfg),
		Execution:        NewExecutionClient(cfg),
		ExecutionLog:     NewExecutionLogClient(cfg),
		ExecutionStep:    NewExecutionStepClient(cfg),
		Ghost:            NewGhostClient(cfg),
		GhostVersion:     NewGhostVersionClient(cfg),
		OrgSettings:      NewOrgSettingsClient(cfg),
		SecureEvent:      NewSecureEventClient(cfg),
		UserFeedback:     NewUserFeedbackClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalRequest.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ApprovalRequest, c.AutomationPolicy, c.DetectedPattern, c.Execution,
		c.ExecutionLog, c.ExecutionStep, c.Ghost, c.GhostVersion, c.OrgSettings,
		c.SecureEvent, c.UserFeedback,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApprovalRequest, c.AutomationPolicy, c.DetectedPattern, c.Execution,
		c.ExecutionLog, c.ExecutionStep, c.Ghost, c.GhostVersion, c.OrgSettings,
		c.SecureEvent, c.UserFeedback,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalRequestMutation:
		return c.ApprovalRequest.mutate(ctx, m)
	case *AutomationPolicyMutation:
		return c.AutomationPolicy.mutate(ctx, m)
	case *DetectedPatternMutation:
		return c.DetectedPattern.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *ExecutionLogMutation:
		return c.ExecutionLog.mutate(ctx, m)
	case *ExecutionStepMutation:
		return c.ExecutionStep.mutate(ctx, m)
	case *GhostMutation:
		return c.Ghost.mutate(ctx, m)
	case *GhostVersionMutation:
		return c.GhostVersion.mutate(ctx, m)
	case *OrgSettingsMutation:
		return c.OrgSettings.mutate(ctx, m)
	case *SecureEventMutation:
		return c.SecureEvent.mutate(ctx, m)
	case *UserFeedbackMutation:
		return c.UserFeedback.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalRequestClient is a client for the ApprovalRequest schema.
type ApprovalRequestClient struct {
	config
}

// NewApprovalRequestClient returns a client for the ApprovalRequest from the given config.
func NewApprovalRequestClient(c config) *ApprovalRequestClient {
	return &ApprovalRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalrequest.Hooks(f(g(h())))`.
func (c *ApprovalRequestClient) Use(hooks ...Hook) {
	c.hooks.ApprovalRequest = append(c.hooks.ApprovalRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalrequest.Intercept(f(g(h())))`.
func (c *ApprovalRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalRequest = append(c.inters.ApprovalRequest, interceptors...)
}

// Create returns a builder for creating a ApprovalRequest entity.
func (c *ApprovalRequestClient) Create() *ApprovalRequestCreate {
	mutation := newApprovalRequestMutation(c.config, OpCreate)
	return &ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalRequest entities.
func (c *ApprovalRequestClient) CreateBulk(builders ...*ApprovalRequestCreate) *ApprovalRequestCreateBulk {
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalRequestClient) MapCreateBulk(slice any, setFunc func(*ApprovalRequestCreate, int)) *ApprovalRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalRequestCreateBulk{err: fmt.Errorf("calling to ApprovalRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalRequest.
func (c *ApprovalRequestClient) Update() *ApprovalRequestUpdate {
	mutation := newApprovalRequestMutation(c.config, OpUpdate)
	return &ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalRequestClient) UpdateOne(_m *ApprovalRequest) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequest(_m))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalRequestClient) UpdateOneID(id string) *ApprovalRequestUpdateOne {
	mutation := newApprovalRequestMutation(c.config, OpUpdateOne, withApprovalRequestID(id))
	return &ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalRequest.
func (c *ApprovalRequestClient) Delete() *ApprovalRequestDelete {
	mutation := newApprovalRequestMutation(c.config, OpDelete)
	return &ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalRequestClient) DeleteOne(_m *ApprovalRequest) *ApprovalRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalRequestClient) DeleteOneID(id string) *ApprovalRequestDeleteOne {
	builder := c.Delete().Where(approvalrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalRequestDeleteOne{builder}
}

// Query returns a query builder for ApprovalRequest.
func (c *ApprovalRequestClient) Query() *ApprovalRequestQuery {
	return &ApprovalRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalRequest entity by its id.
func (c *ApprovalRequestClient) Get(ctx context.Context, id string) (*ApprovalRequest, error) {
	return c.Query().Where(approvalrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalRequestClient) GetX(ctx context.Context, id string) *ApprovalRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalRequestClient) Hooks() []Hook {
	return c.hooks.ApprovalRequest
}

// Interceptors returns the client interceptors.
func (c *ApprovalRequestClient) Interceptors() []Interceptor {
	return c.inters.ApprovalRequest
}

func (c *ApprovalRequestClient) mutate(ctx context.Context, m *ApprovalRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalRequest mutation op: %q", m.Op())
	}
}

// AutomationPolicyClient is a client for the AutomationPolicy schema.
type AutomationPolicyClient struct {
	config
}

// NewAutomationPolicyClient returns a client for the AutomationPolicy from the given config.
func NewAutomationPolicyClient(c config) *AutomationPolicyClient {
	return &AutomationPolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `automationpolicy.Hooks(f(g(h())))`.
func (c *AutomationPolicyClient) Use(hooks ...Hook) {
	c.hooks.AutomationPolicy = append(c.hooks.AutomationPolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `automationpolicy.Intercept(f(g(h())))`.
func (c *AutomationPolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.AutomationPolicy = append(c.inters.AutomationPolicy, interceptors...)
}

// Create returns a builder for creating a AutomationPolicy entity.
func (c *AutomationPolicyClient) Create() *AutomationPolicyCreate {
	mutation := newAutomationPolicyMutation(c.config, OpCreate)
	return &AutomationPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AutomationPolicy entities.
func (c *AutomationPolicyClient) CreateBulk(builders ...*AutomationPolicyCreate) *AutomationPolicyCreateBulk {
	return &AutomationPolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AutomationPolicyClient) MapCreateBulk(slice any, setFunc func(*AutomationPolicyCreate, int)) *AutomationPolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AutomationPolicyCreateBulk{err: fmt.Errorf("calling to AutomationPolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AutomationPolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AutomationPolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AutomationPolicy.
func (c *AutomationPolicyClient) Update() *AutomationPolicyUpdate {
	mutation := newAutomationPolicyMutation(c.config, OpUpdate)
	return &AutomationPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AutomationPolicyClient) UpdateOne(_m *AutomationPolicy) *AutomationPolicyUpdateOne {
	mutation := newAutomationPolicyMutation(c.config, OpUpdateOne, withAutomationPolicy(_m))
	return &AutomationPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AutomationPolicyClient) UpdateOneID(id string) *AutomationPolicyUpdateOne {
	mutation := newAutomationPolicyMutation(c.config, OpUpdateOne, withAutomationPolicyID(id))
	return &AutomationPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AutomationPolicy.
func (c *AutomationPolicyClient) Delete() *AutomationPolicyDelete {
	mutation := newAutomationPolicyMutation(c.config, OpDelete)
	return &AutomationPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AutomationPolicyClient) DeleteOne(_m *AutomationPolicy) *AutomationPolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AutomationPolicyClient) DeleteOneID(id string) *AutomationPolicyDeleteOne {
	builder := c.Delete().Where(automationpolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AutomationPolicyDeleteOne{builder}
}

// Query returns a query builder for AutomationPolicy.
func (c *AutomationPolicyClient) Query() *AutomationPolicyQuery {
	return &AutomationPolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAutomationPolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a AutomationPolicy entity by its id.
func (c *AutomationPolicyClient) Get(ctx context.Context, id string) (*AutomationPolicy, error) {
	return c.Query().Where(automationpolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AutomationPolicyClient) GetX(ctx context.Context, id string) *AutomationPolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AutomationPolicyClient) Hooks() []Hook {
	return c.hooks.AutomationPolicy
}

// Interceptors returns the client interceptors.
func (c *AutomationPolicyClient) Interceptors() []Interceptor {
	return c.inters.AutomationPolicy
}

func (c *AutomationPolicyClient) mutate(ctx context.Context, m *AutomationPolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AutomationPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AutomationPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AutomationPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AutomationPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AutomationPolicy mutation op: %q", m.Op())
	}
}

// DetectedPatternClient is a client for the DetectedPattern schema.
type DetectedPatternClient struct {
	config
}

// NewDetectedPatternClient returns a client for the DetectedPattern from the given config.
func NewDetectedPatternClient(c config) *DetectedPatternClient {
	return &DetectedPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `detectedpattern.Hooks(f(g(h())))`.
func (c *DetectedPatternClient) Use(hooks ...Hook) {
	c.hooks.DetectedPattern = append(c.hooks.DetectedPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `detectedpattern.Intercept(f(g(h())))`.
func (c *DetectedPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.DetectedPattern = append(c.inters.DetectedPattern, interceptors...)
}

// Create returns a builder for creating a DetectedPattern entity.
func (c *DetectedPatternClient) Create() *DetectedPatternCreate {
	mutation := newDetectedPatternMutation(c.config, OpCreate)
	return &DetectedPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DetectedPattern entities.
func (c *DetectedPatternClient) CreateBulk(builders ...*DetectedPatternCreate) *DetectedPatternCreateBulk {
	return &DetectedPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DetectedPatternClient) MapCreateBulk(slice any, setFunc func(*DetectedPatternCreate, int)) *DetectedPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DetectedPatternCreateBulk{err: fmt.Errorf("calling to DetectedPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DetectedPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DetectedPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DetectedPattern.
func (c *DetectedPatternClient) Update() *DetectedPatternUpdate {
	mutation := newDetectedPatternMutation(c.config, OpUpdate)
	return &DetectedPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DetectedPatternClient) UpdateOne(_m *DetectedPattern) *DetectedPatternUpdateOne {
	mutation := newDetectedPatternMutation(c.config, OpUpdateOne, withDetectedPattern(_m))
	return &DetectedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DetectedPatternClient) UpdateOneID(id string) *DetectedPatternUpdateOne {
	mutation := newDetectedPatternMutation(c.config, OpUpdateOne, withDetectedPatternID(id))
	return &DetectedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DetectedPattern.
func (c *DetectedPatternClient) Delete() *DetectedPatternDelete {
	mutation := newDetectedPatternMutation(c.config, OpDelete)
	return &DetectedPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DetectedPatternClient) DeleteOne(_m *DetectedPattern) *DetectedPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DetectedPatternClient) DeleteOneID(id string) *DetectedPatternDeleteOne {
	builder := c.Delete().Where(detectedpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DetectedPatternDeleteOne{builder}
}

// Query returns a query builder for DetectedPattern.
func (c *DetectedPatternClient) Query() *DetectedPatternQuery {
	return &DetectedPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDetectedPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a DetectedPattern entity by its id.
func (c *DetectedPatternClient) Get(ctx context.Context, id string) (*DetectedPattern, error) {
	return c.Query().Where(detectedpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DetectedPatternClient) GetX(ctx context.Context, id string) *DetectedPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DetectedPatternClient) Hooks() []Hook {
	return c.hooks.DetectedPattern
}

// Interceptors returns the client interceptors.
func (c *DetectedPatternClient) Interceptors() []Interceptor {
	return c.inters.DetectedPattern
}

func (c *DetectedPatternClient) mutate(ctx context.Context, m *DetectedPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DetectedPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DetectedPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DetectedPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DetectedPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DetectedPattern mutation op: %q", m.Op())
	}
}

// ExecutionClient is a client for the Execution schema.
type ExecutionClient struct {
	config
}

// NewExecutionClient returns a client for the Execution from the given config.
func NewExecutionClient(c config) *ExecutionClient {
	return &ExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `execution.Hooks(f(g(h())))`.
func (c *ExecutionClient) Use(hooks ...Hook) {
	c.hooks.Execution = append(c.hooks.Execution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `execution.Intercept(f(g(h())))`.
func (c *ExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Execution = append(c.inters.Execution, interceptors...)
}

// Create returns a builder for creating a Execution entity.
func (c *ExecutionClient) Create() *ExecutionCreate {
	mutation := newExecutionMutation(c.config, OpCreate)
	return &ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Execution entities.
func (c *ExecutionClient) CreateBulk(builders ...*ExecutionCreate) *ExecutionCreateBulk {
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionClient) MapCreateBulk(slice any, setFunc func(*ExecutionCreate, int)) *ExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionCreateBulk{err: fmt.Errorf("calling to ExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Execution.
func (c *ExecutionClient) Update() *ExecutionUpdate {
	mutation := newExecutionMutation(c.config, OpUpdate)
	return &ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionClient) UpdateOne(_m *Execution) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecution(_m))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionClient) UpdateOneID(id string) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecutionID(id))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Execution.
func (c *ExecutionClient) Delete() *ExecutionDelete {
	mutation := newExecutionMutation(c.config, OpDelete)
	return &ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionClient) DeleteOne(_m *Execution) *ExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionClient) DeleteOneID(id string) *ExecutionDeleteOne {
	builder := c.Delete().Where(execution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionDeleteOne{builder}
}

// Query returns a query builder for Execution.
func (c *ExecutionClient) Query() *ExecutionQuery {
	return &ExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a Execution entity by its id.
func (c *ExecutionClient) Get(ctx context.Context, id string) (*Execution, error) {
	return c.Query().Where(execution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionClient) GetX(ctx context.Context, id string) *Execution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExecutionClient) Hooks() []Hook {
	return c.hooks.Execution
}

// Interceptors returns the client interceptors.
func (c *ExecutionClient) Interceptors() []Interceptor {
	return c.inters.Execution
}

func (c *ExecutionClient) mutate(ctx context.Context, m *ExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Execution mutation op: %q", m.Op())
	}
}

// ExecutionLogClient is a client for the ExecutionLog schema.
type ExecutionLogClient struct {
	config
}

// NewExecutionLogClient returns a client for the ExecutionLog from the given config.
func NewExecutionLogClient(c config) *ExecutionLogClient {
	return &ExecutionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionlog.Hooks(f(g(h())))`.
func (c *ExecutionLogClient) Use(hooks ...Hook) {
	c.hooks.ExecutionLog = append(c.hooks.ExecutionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionlog.Intercept(f(g(h())))`.
func (c *ExecutionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionLog = append(c.inters.ExecutionLog, interceptors...)
}

// Create returns a builder for creating a ExecutionLog entity.
func (c *ExecutionLogClient) Create() *ExecutionLogCreate {
	mutation := newExecutionLogMutation(c.config, OpCreate)
	return &ExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionLog entities.
func (c *ExecutionLogClient) CreateBulk(builders ...*ExecutionLogCreate) *ExecutionLogCreateBulk {
	return &ExecutionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionLogClient) MapCreateBulk(slice any, setFunc func(*ExecutionLogCreate, int)) *ExecutionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionLogCreateBulk{err: fmt.Errorf("calling to ExecutionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionLog.
func (c *ExecutionLogClient) Update() *ExecutionLogUpdate {
	mutation := newExecutionLogMutation(c.config, OpUpdate)
	return &ExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionLogClient) UpdateOne(_m *ExecutionLog) *ExecutionLogUpdateOne {
	mutation := newExecutionLogMutation(c.config, OpUpdateOne, withExecutionLog(_m))
	return &ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionLogClient) UpdateOneID(id string) *ExecutionLogUpdateOne {
	mutation := newExecutionLogMutation(c.config, OpUpdateOne, withExecutionLogID(id))
	return &ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionLog.
func (c *ExecutionLogClient) Delete() *ExecutionLogDelete {
	mutation := newExecutionLogMutation(c.config, OpDelete)
	return &ExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionLogClient) DeleteOne(_m *ExecutionLog) *ExecutionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionLogClient) DeleteOneID(id string) *ExecutionLogDeleteOne {
	builder := c.Delete().Where(executionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionLogDeleteOne{builder}
}

// Query returns a query builder for ExecutionLog.
func (c *ExecutionLogClient) Query() *ExecutionLogQuery {
	return &ExecutionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionLog entity by its id.
func (c *ExecutionLogClient) Get(ctx context.Context, id string) (*ExecutionLog, error) {
	return c.Query().Where(executionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionLogClient) GetX(ctx context.Context, id string) *ExecutionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExecutionLogClient) Hooks() []Hook {
	hooks := c.hooks.ExecutionLog
	return append(hooks[:len(hooks):len(hooks)], executionlog.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *ExecutionLogClient) Interceptors() []Interceptor {
	return c.inters.ExecutionLog
}

func (c *ExecutionLogClient) mutate(ctx context.Context, m *ExecutionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionLog mutation op: %q", m.Op())
	}
}

// ExecutionStepClient is a client for the ExecutionStep schema.
type ExecutionStepClient struct {
	config
}

// NewExecutionStepClient returns a client for the ExecutionStep from the given config.
func NewExecutionStepClient(c config) *ExecutionStepClient {
	return &ExecutionStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionstep.Hooks(f(g(h())))`.
func (c *ExecutionStepClient) Use(hooks ...Hook) {
	c.hooks.ExecutionStep = append(c.hooks.ExecutionStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionstep.Intercept(f(g(h())))`.
func (c *ExecutionStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionStep = append(c.inters.ExecutionStep, interceptors...)
}

// Create returns a builder for creating a ExecutionStep entity.
func (c *ExecutionStepClient) Create() *ExecutionStepCreate {
	mutation := newExecutionStepMutation(c.config, OpCreate)
	return &ExecutionStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionStep entities.
func (c *ExecutionStepClient) CreateBulk(builders ...*ExecutionStepCreate) *ExecutionStepCreateBulk {
	return &ExecutionStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionStepClient) MapCreateBulk(slice any, setFunc func(*ExecutionStepCreate, int)) *ExecutionStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionStepCreateBulk{err: fmt.Errorf("calling to ExecutionStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionStep.
func (c *ExecutionStepClient) Update() *ExecutionStepUpdate {
	mutation := newExecutionStepMutation(c.config, OpUpdate)
	return &ExecutionStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionStepClient) UpdateOne(_m *ExecutionStep) *ExecutionStepUpdateOne {
	mutation := newExecutionStepMutation(c.config, OpUpdateOne, withExecutionStep(_m))
	return &ExecutionStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionStepClient) UpdateOneID(id string) *ExecutionStepUpdateOne {
	mutation := newExecutionStepMutation(c.config, OpUpdateOne, withExecutionStepID(id))
	return &ExecutionStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionStep.
func (c *ExecutionStepClient) Delete() *ExecutionStepDelete {
	mutation := newExecutionStepMutation(c.config, OpDelete)
	return &ExecutionStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionStepClient) DeleteOne(_m *ExecutionStep) *ExecutionStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionStepClient) DeleteOneID(id string) *ExecutionStepDeleteOne {
	builder := c.Delete().Where(executionstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionStepDeleteOne{builder}
}

// Query returns a query builder for ExecutionStep.
func (c *ExecutionStepClient) Query() *ExecutionStepQuery {
	return &ExecutionStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionStep},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionStep entity by its id.
func (c *ExecutionStepClient) Get(ctx context.Context, id string) (*ExecutionStep, error) {
	return c.Query().Where(executionstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionStepClient) GetX(ctx context.Context, id string) *ExecutionStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExecutionStepClient) Hooks() []Hook {
	return c.hooks.ExecutionStep
}

// Interceptors returns the client interceptors.
func (c *ExecutionStepClient) Interceptors() []Interceptor {
	return c.inters.ExecutionStep
}

func (c *ExecutionStepClient) mutate(ctx context.Context, m *ExecutionStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionStep mutation op: %q", m.Op())
	}
}

// GhostClient is a client for the Ghost schema.
type GhostClient struct {
	config
}

// NewGhostClient returns a client for the Ghost from the given config.
func NewGhostClient(c config) *GhostClient {
	return &GhostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ghost.Hooks(f(g(h())))`.
func (c *GhostClient) Use(hooks ...Hook) {
	c.hooks.Ghost = append(c.hooks.Ghost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ghost.Intercept(f(g(h())))`.
func (c *GhostClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ghost = append(c.inters.Ghost, interceptors...)
}

// Create returns a builder for creating a Ghost entity.
func (c *GhostClient) Create() *GhostCreate {
	mutation := newGhostMutation(c.config, OpCreate)
	return &GhostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ghost entities.
func (c *GhostClient) CreateBulk(builders ...*GhostCreate) *GhostCreateBulk {
	return &GhostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GhostClient) MapCreateBulk(slice any, setFunc func(*GhostCreate, int)) *GhostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GhostCreateBulk{err: fmt.Errorf("calling to GhostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GhostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GhostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ghost.
func (c *GhostClient) Update() *GhostUpdate {
	mutation := newGhostMutation(c.config, OpUpdate)
	return &GhostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GhostClient) UpdateOne(_m *Ghost) *GhostUpdateOne {
	mutation := newGhostMutation(c.config, OpUpdateOne, withGhost(_m))
	return &GhostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GhostClient) UpdateOneID(id string) *GhostUpdateOne {
	mutation := newGhostMutation(c.config, OpUpdateOne, withGhostID(id))
	return &GhostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ghost.
func (c *GhostClient) Delete() *GhostDelete {
	mutation := newGhostMutation(c.config, OpDelete)
	return &GhostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GhostClient) DeleteOne(_m *Ghost) *GhostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GhostClient) DeleteOneID(id string) *GhostDeleteOne {
	builder := c.Delete().Where(ghost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GhostDeleteOne{builder}
}

// Query returns a query builder for Ghost.
func (c *GhostClient) Query() *GhostQuery {
	return &GhostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGhost},
		inters: c.Interceptors(),
	}
}

// Get returns a Ghost entity by its id.
func (c *GhostClient) Get(ctx context.Context, id string) (*Ghost, error) {
	return c.Query().Where(ghost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GhostClient) GetX(ctx context.Context, id string) *Ghost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GhostClient) Hooks() []Hook {
	return c.hooks.Ghost
}

// Interceptors returns the client interceptors.
func (c *GhostClient) Interceptors() []Interceptor {
	return c.inters.Ghost
}

func (c *GhostClient) mutate(ctx context.Context, m *GhostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GhostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GhostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GhostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GhostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ghost mutation op: %q", m.Op())
	}
}

// GhostVersionClient is a client for the GhostVersion schema.
type GhostVersionClient struct {
	config
}

// NewGhostVersionClient returns a client for the GhostVersion from the given config.
func NewGhostVersionClient(c config) *GhostVersionClient {
	return &GhostVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ghostversion.Hooks(f(g(h())))`.
func (c *GhostVersionClient) Use(hooks ...Hook) {
	c.hooks.GhostVersion = append(c.hooks.GhostVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ghostversion.Intercept(f(g(h())))`.
func (c *GhostVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GhostVersion = append(c.inters.GhostVersion, interceptors...)
}

// Create returns a builder for creating a GhostVersion entity.
func (c *GhostVersionClient) Create() *GhostVersionCreate {
	mutation := newGhostVersionMutation(c.config, OpCreate)
	return &GhostVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GhostVersion entities.
func (c *GhostVersionClient) CreateBulk(builders ...*GhostVersionCreate) *GhostVersionCreateBulk {
	return &GhostVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GhostVersionClient) MapCreateBulk(slice any, setFunc func(*GhostVersionCreate, int)) *GhostVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GhostVersionCreateBulk{err: fmt.Errorf("calling to GhostVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GhostVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GhostVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GhostVersion.
func (c *GhostVersionClient) Update() *GhostVersionUpdate {
	mutation := newGhostVersionMutation(c.config, OpUpdate)
	return &GhostVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GhostVersionClient) UpdateOne(_m *GhostVersion) *GhostVersionUpdateOne {
	mutation := newGhostVersionMutation(c.config, OpUpdateOne, withGhostVersion(_m))
	return &GhostVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GhostVersionClient) UpdateOneID(id string) *GhostVersionUpdateOne {
	mutation := newGhostVersionMutation(c.config, OpUpdateOne, withGhostVersionID(id))
	return &GhostVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GhostVersion.
func (c *GhostVersionClient) Delete() *GhostVersionDelete {
	mutation := newGhostVersionMutation(c.config, OpDelete)
	return &GhostVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GhostVersionClient) DeleteOne(_m *GhostVersion) *GhostVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GhostVersionClient) DeleteOneID(id string) *GhostVersionDeleteOne {
	builder := c.Delete().Where(ghostversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GhostVersionDeleteOne{builder}
}

// Query returns a query builder for GhostVersion.
func (c *GhostVersionClient) Query() *GhostVersionQuery {
	return &GhostVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGhostVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a GhostVersion entity by its id.
func (c *GhostVersionClient) Get(ctx context.Context, id string) (*GhostVersion, error) {
	return c.Query().Where(ghostversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GhostVersionClient) GetX(ctx context.Context, id string) *GhostVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GhostVersionClient) Hooks() []Hook {
	return c.hooks.GhostVersion
}

// Interceptors returns the client interceptors.
func (c *GhostVersionClient) Interceptors() []Interceptor {
	return c.inters.GhostVersion
}

func (c *GhostVersionClient) mutate(ctx context.Context, m *GhostVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GhostVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GhostVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GhostVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GhostVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GhostVersion mutation op: %q", m.Op())
	}
}

// OrgSettingsClient is a client for the OrgSettings schema.
type OrgSettingsClient struct {
	config
}

// NewOrgSettingsClient returns a client for the OrgSettings from the given config.
func NewOrgSettingsClient(c config) *OrgSettingsClient {
	return &OrgSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orgsettings.Hooks(f(g(h())))`.
func (c *OrgSettingsClient) Use(hooks ...Hook) {
	c.hooks.OrgSettings = append(c.hooks.OrgSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orgsettings.Intercept(f(g(h())))`.
func (c *OrgSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrgSettings = append(c.inters.OrgSettings, interceptors...)
}

// Create returns a builder for creating a OrgSettings entity.
func (c *OrgSettingsClient) Create() *OrgSettingsCreate {
	mutation := newOrgSettingsMutation(c.config, OpCreate)
	return &OrgSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrgSettings entities.
func (c *OrgSettingsClient) CreateBulk(builders ...*OrgSettingsCreate) *OrgSettingsCreateBulk {
	return &OrgSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrgSettingsClient) MapCreateBulk(slice any, setFunc func(*OrgSettingsCreate, int)) *OrgSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrgSettingsCreateBulk{err: fmt.Errorf("calling to OrgSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrgSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrgSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrgSettings.
func (c *OrgSettingsClient) Update() *OrgSettingsUpdate {
	mutation := newOrgSettingsMutation(c.config, OpUpdate)
	return &OrgSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrgSettingsClient) UpdateOne(_m *OrgSettings) *OrgSettingsUpdateOne {
	mutation := newOrgSettingsMutation(c.config, OpUpdateOne, withOrgSettings(_m))
	return &OrgSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrgSettingsClient) UpdateOneID(id string) *OrgSettingsUpdateOne {
	mutation := newOrgSettingsMutation(c.config, OpUpdateOne, withOrgSettingsID(id))
	return &OrgSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrgSettings.
func (c *OrgSettingsClient) Delete() *OrgSettingsDelete {
	mutation := newOrgSettingsMutation(c.config, OpDelete)
	return &OrgSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrgSettingsClient) DeleteOne(_m *OrgSettings) *OrgSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrgSettingsClient) DeleteOneID(id string) *OrgSettingsDeleteOne {
	builder := c.Delete().Where(orgsettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrgSettingsDeleteOne{builder}
}

// Query returns a query builder for OrgSettings.
func (c *OrgSettingsClient) Query() *OrgSettingsQuery {
	return &OrgSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrgSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a OrgSettings entity by its id.
func (c *OrgSettingsClient) Get(ctx context.Context, id string) (*OrgSettings, error) {
	return c.Query().Where(orgsettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrgSettingsClient) GetX(ctx context.Context, id string) *OrgSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrgSettingsClient) Hooks() []Hook {
	return c.hooks.OrgSettings
}

// Interceptors returns the client interceptors.
func (c *OrgSettingsClient) Interceptors() []Interceptor {
	return c.inters.OrgSettings
}

func (c *OrgSettingsClient) mutate(ctx context.Context, m *OrgSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrgSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrgSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrgSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrgSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrgSettings mutation op: %q", m.Op())
	}
}

// SecureEventClient is a client for the SecureEvent schema.
type SecureEventClient struct {
	config
}

// NewSecureEventClient returns a client for the SecureEvent from the given config.
func NewSecureEventClient(c config) *SecureEventClient {
	return &SecureEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `secureevent.Hooks(f(g(h())))`.
func (c *SecureEventClient) Use(hooks ...Hook) {
	c.hooks.SecureEvent = append(c.hooks.SecureEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `secureevent.Intercept(f(g(h())))`.
func (c *SecureEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SecureEvent = append(c.inters.SecureEvent, interceptors...)
}

// Create returns a builder for creating a SecureEvent entity.
func (c *SecureEventClient) Create() *SecureEventCreate {
	mutation := newSecureEventMutation(c.config, OpCreate)
	return &SecureEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SecureEvent entities.
func (c *SecureEventClient) CreateBulk(builders ...*SecureEventCreate) *SecureEventCreateBulk {
	return &SecureEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SecureEventClient) MapCreateBulk(slice any, setFunc func(*SecureEventCreate, int)) *SecureEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SecureEventCreateBulk{err: fmt.Errorf("calling to SecureEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SecureEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SecureEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SecureEvent.
func (c *SecureEventClient) Update() *SecureEventUpdate {
	mutation := newSecureEventMutation(c.config, OpUpdate)
	return &SecureEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SecureEventClient) UpdateOne(_m *SecureEvent) *SecureEventUpdateOne {
	mutation := newSecureEventMutation(c.config, OpUpdateOne, withSecureEvent(_m))
	return &SecureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SecureEventClient) UpdateOneID(id string) *SecureEventUpdateOne {
	mutation := newSecureEventMutation(c.config, OpUpdateOne, withSecureEventID(id))
	return &SecureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SecureEvent.
func (c *SecureEventClient) Delete() *SecureEventDelete {
	mutation := newSecureEventMutation(c.config, OpDelete)
	return &SecureEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SecureEventClient) DeleteOne(_m *SecureEvent) *SecureEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SecureEventClient) DeleteOneID(id string) *SecureEventDeleteOne {
	builder := c.Delete().Where(secureevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SecureEventDeleteOne{builder}
}

// Query returns a query builder for SecureEvent.
func (c *SecureEventClient) Query() *SecureEventQuery {
	return &SecureEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSecureEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SecureEvent entity by its id.
func (c *SecureEventClient) Get(ctx context.Context, id string) (*SecureEvent, error) {
	return c.Query().Where(secureevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SecureEventClient) GetX(ctx context.Context, id string) *SecureEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SecureEventClient) Hooks() []Hook {
	return c.hooks.SecureEvent
}

// Interceptors returns the client interceptors.
func (c *SecureEventClient) Interceptors() []Interceptor {
	return c.inters.SecureEvent
}

func (c *SecureEventClient) mutate(ctx context.Context, m *SecureEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SecureEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SecureEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SecureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SecureEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SecureEvent mutation op: %q", m.Op())
	}
}

// UserFeedbackClient is a client for the UserFeedback schema.
type UserFeedbackClient struct {
	config
}

// NewUserFeedbackClient returns a client for the UserFeedback from the given config.
func NewUserFeedbackClient(c config) *UserFeedbackClient {
	return &UserFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userfeedback.Hooks(f(g(h())))`.
func (c *UserFeedbackClient) Use(hooks ...Hook) {
	c.hooks.UserFeedback = append(c.hooks.UserFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userfeedback.Intercept(f(g(h())))`.
func (c *UserFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserFeedback = append(c.inters.UserFeedback, interceptors...)
}

// Create returns a builder for creating a UserFeedback entity.
func (c *UserFeedbackClient) Create() *UserFeedbackCreate {
	mutation := newUserFeedbackMutation(c.config, OpCreate)
	return &UserFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserFeedback entities.
func (c *UserFeedbackClient) CreateBulk(builders ...*UserFeedbackCreate) *UserFeedbackCreateBulk {
	return &UserFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserFeedbackClient) MapCreateBulk(slice any, setFunc func(*UserFeedbackCreate, int)) *UserFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserFeedbackCreateBulk{err: fmt.Errorf("calling to UserFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserFeedback.
func (c *UserFeedbackClient) Update() *UserFeedbackUpdate {
	mutation := newUserFeedbackMutation(c.config, OpUpdate)
	return &UserFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserFeedbackClient) UpdateOne(_m *UserFeedback) *UserFeedbackUpdateOne {
	mutation := newUserFeedbackMutation(c.config, OpUpdateOne, withUserFeedback(_m))
	return &UserFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserFeedbackClient) UpdateOneID(id string) *UserFeedbackUpdateOne {
	mutation := newUserFeedbackMutation(c.config, OpUpdateOne, withUserFeedbackID(id))
	return &UserFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserFeedback.
func (c *UserFeedbackClient) Delete() *UserFeedbackDelete {
	mutation := newUserFeedbackMutation(c.config, OpDelete)
	return &UserFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserFeedbackClient) DeleteOne(_m *UserFeedback) *UserFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserFeedbackClient) DeleteOneID(id string) *UserFeedbackDeleteOne {
	builder := c.Delete().Where(userfeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserFeedbackDeleteOne{builder}
}

// Query returns a query builder for UserFeedback.
func (c *UserFeedbackClient) Query() *UserFeedbackQuery {
	return &UserFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a UserFeedback entity by its id.
func (c *UserFeedbackClient) Get(ctx context.Context, id string) (*UserFeedback, error) {
	return c.Query().Where(userfeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserFeedbackClient) GetX(ctx context.Context, id string) *UserFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserFeedbackClient) Hooks() []Hook {
	hooks := c.hooks.UserFeedback
	return append(hooks[:len(hooks):len(hooks)], userfeedback.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *UserFeedbackClient) Interceptors() []Interceptor {
	return c.inters.UserFeedback
}

func (c *UserFeedbackClient) mutate(ctx context.Context, m *UserFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserFeedback mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalRequest, AutomationPolicy, DetectedPattern, Execution, ExecutionLog,
		ExecutionStep, Ghost, GhostVersion, OrgSettings, SecureEvent,
		UserFeedback []ent.Hook
	}
	inters struct {
		ApprovalRequest, AutomationPolicy, DetectedPattern, Execution, ExecutionLog,
		ExecutionStep, Ghost, GhostVersion, OrgSettings, SecureEvent,
		UserFeedback []ent.Interceptor
	}
)
