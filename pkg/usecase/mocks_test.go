package usecase_test

import (
	"context"
	"fmt"
)

// MockGitClient is a mock implementation of interfaces.GitClient.
// Unset function fields behave as a clean, synchronized repository on
// branch "release"; mutating calls are recorded in Calls.
type MockGitClient struct {
	StatusFunc          func(ctx context.Context) error
	DiffFilesCleanFunc  func(ctx context.Context) (bool, error)
	DiffIndexCleanFunc  func(ctx context.Context) (bool, error)
	CurrentBranchFunc   func(ctx context.Context) (string, error)
	FetchFunc           func(ctx context.Context, remote string) error
	TipsMatchFunc       func(ctx context.Context, remote, branch string) (bool, error)
	DescribeFunc        func(ctx context.Context, matchTag string) (string, error)
	RemoteTagExistsFunc func(ctx context.Context, remote, tag string) (bool, error)

	Calls []string
}

func (m *MockGitClient) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

func (m *MockGitClient) Status(ctx context.Context) error {
	m.record("status")
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx)
	}
	return nil
}

func (m *MockGitClient) DiffFilesClean(ctx context.Context) (bool, error) {
	if m.DiffFilesCleanFunc != nil {
		return m.DiffFilesCleanFunc(ctx)
	}
	return true, nil
}

func (m *MockGitClient) DiffIndexClean(ctx context.Context) (bool, error) {
	if m.DiffIndexCleanFunc != nil {
		return m.DiffIndexCleanFunc(ctx)
	}
	return true, nil
}

func (m *MockGitClient) CurrentBranch(ctx context.Context) (string, error) {
	if m.CurrentBranchFunc != nil {
		return m.CurrentBranchFunc(ctx)
	}
	return "release", nil
}

func (m *MockGitClient) Fetch(ctx context.Context, remote string) error {
	m.record("fetch %s", remote)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, remote)
	}
	return nil
}

func (m *MockGitClient) TipsMatch(ctx context.Context, remote, branch string) (bool, error) {
	if m.TipsMatchFunc != nil {
		return m.TipsMatchFunc(ctx, remote, branch)
	}
	return true, nil
}

func (m *MockGitClient) Describe(ctx context.Context, matchTag string) (string, error) {
	if m.DescribeFunc != nil {
		return m.DescribeFunc(ctx, matchTag)
	}
	return "3.3.0", nil
}

func (m *MockGitClient) RemoteTagExists(ctx context.Context, remote, tag string) (bool, error) {
	if m.RemoteTagExistsFunc != nil {
		return m.RemoteTagExistsFunc(ctx, remote, tag)
	}
	return false, nil
}

func (m *MockGitClient) Add(ctx context.Context, path string) error {
	m.record("add %s", path)
	return nil
}

func (m *MockGitClient) Commit(ctx context.Context, message string) error {
	m.record("commit %s", message)
	return nil
}

func (m *MockGitClient) Tag(ctx context.Context, name, message string) error {
	m.record("tag %s", name)
	return nil
}

func (m *MockGitClient) Push(ctx context.Context, remote, ref string) error {
	m.record("push %s %s", remote, ref)
	return nil
}

func (m *MockGitClient) Remove(ctx context.Context, path string) error {
	m.record("rm %s", path)
	return nil
}

// MockPackageManager is a mock implementation of
// interfaces.PackageManager.
type MockPackageManager struct {
	FreezeFunc      func(ctx context.Context) error
	ToolVersionFunc func(ctx context.Context) (string, error)

	FreezeCalls int
}

func (m *MockPackageManager) Freeze(ctx context.Context) error {
	m.FreezeCalls++
	if m.FreezeFunc != nil {
		return m.FreezeFunc(ctx)
	}
	return nil
}

func (m *MockPackageManager) LockfilePath() string {
	return "npm-shrinkwrap.json"
}

func (m *MockPackageManager) ToolVersion(ctx context.Context) (string, error) {
	if m.ToolVersionFunc != nil {
		return m.ToolVersionFunc(ctx)
	}
	return "v18.17.0", nil
}

// MockObjectStore records uploads.
type MockObjectStore struct {
	PutFunc func(ctx context.Context, bucket, key, localPath string) error

	Puts []MockPut
}

type MockPut struct {
	Bucket    string
	Key       string
	LocalPath string
}

func (m *MockObjectStore) Put(ctx context.Context, bucket, key, localPath string) error {
	m.Puts = append(m.Puts, MockPut{Bucket: bucket, Key: key, LocalPath: localPath})
	if m.PutFunc != nil {
		return m.PutFunc(ctx, bucket, key, localPath)
	}
	return nil
}
