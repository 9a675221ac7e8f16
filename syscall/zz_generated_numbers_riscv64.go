package syscall

// SYS_<NAME> constants for riscv64, generated from table.go's Archs maps by
// tools/gensyscalls. Bit-exact with the kernel's per-arch syscall numbering
// for every syscall this module's table carries a row for.
const (
	SYS_ACCEPT4         uint64 = 242
	SYS_BIND            uint64 = 200
	SYS_BRK             uint64 = 214
	SYS_CAPGET          uint64 = 90
	SYS_CAPSET          uint64 = 91
	SYS_CHDIR           uint64 = 49
	SYS_CLOCK_GETTIME   uint64 = 113
	SYS_CLOCK_NANOSLEEP uint64 = 115
	SYS_CLONE           uint64 = 220
	SYS_CLONE3          uint64 = 435
	SYS_CLOSE           uint64 = 57
	SYS_CLOSE_RANGE     uint64 = 436
	SYS_CONNECT         uint64 = 203
	SYS_DUP3            uint64 = 24
	SYS_EXECVE          uint64 = 221
	SYS_EXECVEAT        uint64 = 281
	SYS_EXIT            uint64 = 93
	SYS_EXIT_GROUP      uint64 = 94
	SYS_FCNTL           uint64 = 25
	SYS_FSTAT           uint64 = 80
	SYS_FSTATFS         uint64 = 44
	SYS_FUTEX           uint64 = 98
	SYS_GETCWD          uint64 = 17
	SYS_GETDENTS64      uint64 = 61
	SYS_GETEGID         uint64 = 177
	SYS_GETEUID         uint64 = 175
	SYS_GETGID          uint64 = 176
	SYS_GETPID          uint64 = 172
	SYS_GETRANDOM       uint64 = 278
	SYS_GETSOCKOPT      uint64 = 209
	SYS_GETTID          uint64 = 178
	SYS_GETUID          uint64 = 174
	SYS_IOCTL           uint64 = 29
	SYS_KILL            uint64 = 129
	SYS_MKDIRAT         uint64 = 34
	SYS_MMAP            uint64 = 222
	SYS_MOUNT           uint64 = 40
	SYS_MPROTECT        uint64 = 226
	SYS_MUNMAP          uint64 = 215
	SYS_NEWFSTATAT      uint64 = 79
	SYS_OPENAT          uint64 = 56
	SYS_OPENAT2         uint64 = 437
	SYS_PIPE2           uint64 = 59
	SYS_PIVOT_ROOT      uint64 = 41
	SYS_PRCTL           uint64 = 167
	SYS_PTRACE          uint64 = 117
	SYS_READ            uint64 = 63
	SYS_READLINKAT      uint64 = 78
	SYS_RECVFROM        uint64 = 207
	SYS_RENAMEAT2       uint64 = 276
	SYS_RSEQ            uint64 = 293
	SYS_RT_SIGACTION    uint64 = 134
	SYS_RT_SIGPROCMASK  uint64 = 135
	SYS_RT_SIGRETURN    uint64 = 139
	SYS_SENDTO          uint64 = 206
	SYS_SETSOCKOPT      uint64 = 208
	SYS_SOCKET          uint64 = 198
	SYS_STATFS          uint64 = 43
	SYS_STATX           uint64 = 291
	SYS_SYMLINKAT       uint64 = 36
	SYS_TGKILL          uint64 = 131
	SYS_UMOUNT2         uint64 = 39
	SYS_UNAME           uint64 = 160
	SYS_UNLINKAT        uint64 = 35
	SYS_WAIT4           uint64 = 260
	SYS_WRITE           uint64 = 64
)
