package adapter

import "context"

// Acquire connects if needed and returns the matching release function.
// Acquisitions nest: only the release of the outermost one disconnects, and
// only when that acquisition opened the connection. A connection opened by
// Connect or Run stays open. Calling a release function more than once has
// no further effect.
func (c *Conn) Acquire(ctx context.Context) (func() error, error) {
	if c.refs == 0 {
		c.owned = !c.IsConnected()
	}
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	c.refs++

	released := false
	return func() error {
		if released {
			return nil
		}
		released = true
		c.refs--
		if c.refs > 0 || !c.owned {
			return nil
		}
		c.owned = false
		return c.Disconnect()
	}, nil
}

// Scope runs fn with the connection held open. The connection is released
// on every exit path, including a panic in fn.
func (c *Conn) Scope(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	release, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn(ctx)
}

// Run executes fn on an open connection. It connects when no connection is
// held, commits when commit is set and fn succeeded, and disconnects only if
// it opened the connection itself.
func (c *Conn) Run(ctx context.Context, commit bool, fn func(ctx context.Context) error) (err error) {
	if !c.IsConnected() {
		if err := c.Connect(ctx); err != nil {
			return err
		}
		defer func() {
			if derr := c.Disconnect(); derr != nil && err == nil {
				err = derr
			}
		}()
	}

	if err := fn(ctx); err != nil {
		return err
	}
	if commit {
		return c.Commit()
	}
	return nil
}
