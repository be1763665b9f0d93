/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

//go:build windows

package wmi

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"golang.org/x/sys/windows"
)

// HRESULT values surfaced by the WMI scripting API that need
// classification.
const (
	hresultOK    uintptr = 0
	hresultFalse uintptr = 1

	rpcETooLate uint32 = 0x80010119

	wbemErrAccessDenied     uint32 = 0x80041003
	wbemErrInvalidNamespace uint32 = 0x8004100E
	wbemErrNotSupported     uint32 = 0x8004100C
	wbemErrInvalidClass     uint32 = 0x80041010
	wbemErrInvalidQuery     uint32 = 0x80041017
)

// IWbemServices::ExecQuery behavior flags.
const (
	wbemFlagReturnImmediately = 0x10
	wbemFlagForwardOnly       = 0x20
)

// COM security constants for CoInitializeSecurity.
const (
	rpcAuthnLevelDefault   = 0
	rpcImpLevelImpersonate = 3
	eoacNone               = 0
)

var (
	// CoInitializeSecurity is not exposed by go-ole.
	ole32                    = windows.NewLazySystemDLL("ole32.dll")
	procCoInitializeSecurity = ole32.NewProc("CoInitializeSecurity")
)

// Process-level COM state is reference counted: the first session
// initializes, the last one tears down. When the host process already
// initialized COM on this thread (S_FALSE), teardown is not ours to do.
var comState struct {
	sync.Mutex
	refs  int
	owned bool
}

func comAddRef() error {
	comState.Lock()
	defer comState.Unlock()

	if comState.refs == 0 {
		comState.owned = true
		if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
			var oleErr *ole.OleError
			if !errors.As(err, &oleErr) {
				return err
			}
			switch oleErr.Code() {
			case hresultOK, hresultFalse:
				comState.owned = false
			default:
				return err
			}
		}
		initializeSecurity()
	}
	comState.refs++
	return nil
}

func comRelease() {
	comState.Lock()
	defer comState.Unlock()

	comState.refs--
	if comState.refs == 0 && comState.owned {
		ole.CoUninitialize()
	}
}

// initializeSecurity sets the process-wide COM security blanket WMI
// requires. RPC_E_TOO_LATE means another component already set it,
// which is fine.
func initializeSecurity() {
	hres, _, _ := procCoInitializeSecurity.Call(
		0,
		^uintptr(0), // let COM choose authentication services
		0,
		0,
		uintptr(rpcAuthnLevelDefault),
		uintptr(rpcImpLevelImpersonate),
		0,
		uintptr(eoacNone),
		0)
	if int32(hres) < 0 && uint32(hres) != rpcETooLate {
		// Non-fatal: queries against the local namespace usually still
		// work with the host's existing blanket.
		_ = ole.NewError(hres)
	}
}

// comSession is a Session backed by the SWbemLocator scripting API.
type comSession struct {
	mu        sync.Mutex
	namespace string
	locator   *ole.IUnknown
	wbem      *ole.IDispatch
	service   *ole.IDispatch
	closed    bool
}

func (p *ConnectionProvider) connect(_ context.Context) (Session, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := comAddRef(); err != nil {
		return nil, &ConnectionError{Namespace: p.namespace, Err: fmt.Errorf("initializing COM: %w", err)}
	}

	fail := func(err error) (Session, error) {
		comRelease()
		return nil, &ConnectionError{Namespace: p.namespace, Err: err}
	}

	locator, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return fail(fmt.Errorf("creating locator: %w", err))
	}

	wbem, err := locator.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		locator.Release()
		return fail(fmt.Errorf("querying locator dispatch: %w", err))
	}

	args := []any{".", p.namespace}
	if p.locale != "" {
		args = append(args, nil, nil, p.locale)
	}
	res, err := oleutil.CallMethod(wbem, "ConnectServer", args...)
	if err != nil {
		wbem.Release()
		locator.Release()
		return fail(fmt.Errorf("connecting server: %w", err))
	}

	return &comSession{
		namespace: p.namespace,
		locator:   locator,
		wbem:      wbem,
		service:   res.ToIDispatch(),
	}, nil
}

// Query executes the WQL query and materializes every returned object
// into a Row. Queries on one session are serialized; the goroutine is
// pinned to its OS thread for the duration of the COM calls.
func (s *comSession) Query(ctx context.Context, wql string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("session is closed")
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	resultRaw, err := oleutil.CallMethod(s.service, "ExecQuery", wql, "WQL",
		wbemFlagReturnImmediately|wbemFlagForwardOnly)
	if err != nil {
		return nil, classifyQueryError(err)
	}
	result := resultRaw.ToIDispatch()
	defer result.Release()

	var rows []Row
	err = oleutil.ForEach(result, func(v *ole.VARIANT) error {
		item := v.ToIDispatch()
		row, rowErr := rowFromObject(item)
		if rowErr != nil {
			return rowErr
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		// Forward-only semisynchronous queries report WBEM errors
		// (invalid class, invalid query) at enumeration time, not at
		// the ExecQuery call.
		return nil, classifyQueryError(err)
	}
	return rows, nil
}

func (s *comSession) Namespace() string {
	return s.namespace
}

// Close releases the service handles and drops the COM reference.
// Safe to call more than once.
func (s *comSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	s.service.Release()
	s.wbem.Release()
	s.locator.Release()
	comRelease()
	return nil
}

// rowFromObject enumerates the Properties_ collection of one
// SWbemObject into a Row.
func rowFromObject(item *ole.IDispatch) (Row, error) {
	propsRaw, err := oleutil.GetProperty(item, "Properties_")
	if err != nil {
		return nil, fmt.Errorf("enumerating properties: %w", err)
	}
	props := propsRaw.ToIDispatch()
	defer props.Release()

	row := make(Row)
	err = oleutil.ForEach(props, func(v *ole.VARIANT) error {
		prop := v.ToIDispatch()

		nameRaw, nameErr := oleutil.GetProperty(prop, "Name")
		if nameErr != nil {
			return fmt.Errorf("reading property name: %w", nameErr)
		}
		name := nameRaw.ToString()
		_ = nameRaw.Clear()

		valRaw, valErr := oleutil.GetProperty(prop, "Value")
		if valErr != nil {
			return fmt.Errorf("reading property %s: %w", name, valErr)
		}
		row[name] = variantValue(valRaw)
		_ = valRaw.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// variantValue converts an enumerated property variant into the plain
// Go shapes Row carries. CIM_DATETIME values arrive as strings and are
// coerced later, at decode time.
func variantValue(v *ole.VARIANT) any {
	switch v.VT {
	case ole.VT_NULL, ole.VT_EMPTY:
		return nil
	}
	if v.VT&ole.VT_ARRAY != 0 {
		arr := v.ToArray()
		if arr == nil {
			return nil
		}
		return arr.ToValueArray()
	}
	return v.Value()
}

// classifyQueryError maps WBEM HRESULTs onto the package's sentinel
// errors so callers can distinguish a rejected class from transport
// failures.
func classifyQueryError(err error) error {
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		switch uint32(oleErr.Code()) {
		case wbemErrInvalidClass, wbemErrInvalidQuery, wbemErrNotSupported, wbemErrInvalidNamespace:
			return fmt.Errorf("%w: %v", ErrServiceRejected, err)
		case wbemErrAccessDenied:
			return fmt.Errorf("access denied: %w", err)
		}
	}
	return err
}
