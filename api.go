package hostruntime

// Package-level views of the process-wide Env, fixed at first use. They
// all observe the same initialization snapshot, so they stay internally
// consistent even if the ambient state changes later.

func IsBrowser() bool { return Default().IsBrowser }
func IsNodejs() bool  { return Default().IsNodejs }
func IsBun() bool     { return Default().IsBun }
func IsDeno() bool    { return Default().IsDeno }

func IsUnrecognized() bool { return Default().IsUnrecognized }

func IsNotBrowser() bool { return Default().IsNotBrowser }
func IsNotNodejs() bool  { return Default().IsNotNodejs }
func IsNotBun() bool     { return Default().IsNotBun }
func IsNotDeno() bool    { return Default().IsNotDeno }

func IsNotUnrecognized() bool { return Default().IsNotUnrecognized }

func OnBrowser() Guard { return Default().OnBrowser }
func OnNodejs() Guard  { return Default().OnNodejs }
func OnBun() Guard     { return Default().OnBun }
func OnDeno() Guard    { return Default().OnDeno }

func OnUnrecognized() Guard { return Default().OnUnrecognized }

func OnNotBrowser() Guard { return Default().OnNotBrowser }
func OnNotNodejs() Guard  { return Default().OnNotNodejs }
func OnNotBun() Guard     { return Default().OnNotBun }
func OnNotDeno() Guard    { return Default().OnNotDeno }
